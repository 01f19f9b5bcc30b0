package main

import (
	"github.com/spf13/cobra"

	"github.com/payam49er/vidu/internal/vidu"
)

func newAnimateCommand(opts *globalOptions) *cobra.Command {
	var req vidu.ImageToVideoRequest
	var image string

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Animate a reference image into a video and wait for the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := imageReference(image)
			if err != nil {
				return err
			}
			req.Images = []string{ref}
			s := newSession(opts)
			if _, err := s.tracker.SubmitImage(cmd.Context(), req); err != nil {
				return err
			}
			return s.follow(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&image, "image", "i", "", "Reference image: URL or local file (required)")
	cmd.Flags().StringVarP(&req.Prompt, "prompt", "p", "", "Optional text prompt")
	cmd.Flags().StringVarP(&req.Model, "model", "m", vidu.ModelViduQ1, "Generation model")
	cmd.Flags().IntVarP(&req.Duration, "duration", "d", 0, "Clip length in seconds")
	cmd.Flags().IntVar(&req.Seed, "seed", 0, "Random seed")
	cmd.Flags().StringVar(&req.Resolution, "resolution", "", "Output resolution")
	cmd.Flags().StringVar(&req.MovementAmplitude, "movement-amplitude", "", "Camera movement amplitude")
	cmd.Flags().BoolVar(&req.BGM, "bgm", false, "Add background music")
	_ = cmd.MarkFlagRequired("image")

	return cmd
}
