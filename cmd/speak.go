package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/abhisek/phonix/internal/speech"
	"github.com/spf13/cobra"
)

// speakTimeout bounds the CLI wait for one utterance.
const speakTimeout = 30 * time.Second

var speakCmd = &cobra.Command{
	Use:   "speak [text...]",
	Short: "Test the speech engine",
	Long:  "Speak the given text through the detected speech engine, or list the available voices.",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := speech.DetectEngine()
		if err != nil {
			return fmt.Errorf("detect speech engine: %w", err)
		}

		if listVoices, _ := cmd.Flags().GetBool("voices"); listVoices {
			voices, err := engine.Voices()
			if err != nil {
				return fmt.Errorf("list voices: %w", err)
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tLANG\tDEFAULT")
			for _, v := range voices {
				def := ""
				if v.Default {
					def = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", v.Name, v.Lang, def)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if chosen := speech.ChooseVoice(voices); chosen != nil {
				fmt.Printf("\nPhonix would pick: %s (%s)\n", chosen.Name, chosen.Lang)
			}
			return nil
		}

		orch := speech.NewOrchestrator(engine)
		defer orch.Stop()

		done := make(chan struct{})
		onDone := func() { close(done) }

		if letter, _ := cmd.Flags().GetString("letter"); letter != "" {
			orch.SpeakPhoneme(letter, onDone)
		} else {
			text := strings.Join(args, " ")
			if text == "" {
				text = "Hello! Phonix is ready to read with you."
			}
			orch.SpeakText(text, speech.Options{OnDone: onDone})
		}

		select {
		case <-done:
			return nil
		case <-time.After(speakTimeout):
			return fmt.Errorf("speech did not finish within %s", speakTimeout)
		}
	},
}

func init() {
	speakCmd.Flags().Bool("voices", false, "List available voices instead of speaking")
	speakCmd.Flags().String("letter", "", "Speak a single letter's phonics sound instead of text")
}
