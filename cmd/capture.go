package cmd

import (
	"github.com/reasonance-lab/artifactmaker/internal/cli/handlers"
	"github.com/spf13/cobra"
)

// captureCmd represents the capture command
var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Save a new entry",
	Long: `Save photos, videos, camera stills, a voice note, and typed notes as one
new entry for a class and date.

At least one of --file, --camera, --audio, or --note is required. A voice
note is transcribed with the configured Whisper backend unless
--no-transcribe is given; when transcription fails the audio is still saved.

Examples:
  artifactmaker capture --class chemistry --file beaker.jpg --note "Color change at 12 mL"
  artifactmaker capture -c "AP Chemistry" --date yesterday --audio lab.wav
  artifactmaker capture -c chemistry --camera still.png --file demo.mov`,
	Args: cobra.NoArgs,
	Run: withServices(func(cmd *cobra.Command, args []string) {
		var in handlers.CaptureInput
		in.Class, _ = cmd.Flags().GetString("class")
		in.Date, _ = cmd.Flags().GetString("date")
		in.Files, _ = cmd.Flags().GetStringArray("file")
		in.Camera, _ = cmd.Flags().GetStringArray("camera")
		in.Note, _ = cmd.Flags().GetString("note")
		in.Audio, _ = cmd.Flags().GetString("audio")
		in.NoTranscribe, _ = cmd.Flags().GetBool("no-transcribe")
		handlers.Capture(cmd.Context(), deps, in)
	}),
}

// transcribeCmd represents the transcribe command
var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe a voice note",
	Long: `Run an audio file through the configured Whisper backend and print the
transcript. Nothing is saved.`,
	Args: cobra.ExactArgs(1),
	Run: withServices(func(cmd *cobra.Command, args []string) {
		handlers.TranscribeFile(cmd.Context(), deps, args[0])
	}),
}

func init() {
	rootCmd.AddCommand(captureCmd)
	rootCmd.AddCommand(transcribeCmd)

	addClassFlag(captureCmd, "Class name or slug (required)")
	captureCmd.Flags().StringP("date", "d", "", "Entry date (default today)")
	captureCmd.Flags().StringArrayP("file", "f", nil, "Photo or video to attach (repeatable)")
	captureCmd.Flags().StringArray("camera", nil, "Camera still to attach (repeatable)")
	captureCmd.Flags().StringP("note", "n", "", "Typed notes")
	captureCmd.Flags().StringP("audio", "a", "", "Voice note audio file")
	captureCmd.Flags().Bool("no-transcribe", false, "Save the voice note without transcribing it")
}
