package main

import (
	"github.com/spf13/cobra"

	"github.com/payam49er/vidu/internal/vidu"
)

func newGenerateCommand(opts *globalOptions) *cobra.Command {
	var req vidu.TextToVideoRequest

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a video from a text prompt and wait for the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(opts)
			if _, err := s.tracker.SubmitText(cmd.Context(), req); err != nil {
				return err
			}
			return s.follow(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&req.Prompt, "prompt", "p", "", "Text prompt (required)")
	cmd.Flags().StringVarP(&req.Model, "model", "m", "", "Generation model")
	cmd.Flags().IntVarP(&req.Duration, "duration", "d", 0, "Clip length in seconds")
	cmd.Flags().StringVar(&req.AspectRatio, "aspect-ratio", "", "Aspect ratio, e.g. 16:9")
	cmd.Flags().StringVar(&req.Style, "style", "", "Visual style")
	cmd.Flags().IntVar(&req.Seed, "seed", 0, "Random seed")
	cmd.Flags().StringVar(&req.Resolution, "resolution", "", "Output resolution")
	cmd.Flags().StringVar(&req.MovementAmplitude, "movement-amplitude", "", "Camera movement amplitude")
	_ = cmd.MarkFlagRequired("prompt")

	return cmd
}
