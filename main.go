package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/rm-hull/icon-tools/cmd"
	"github.com/rm-hull/icon-tools/internal"
	"github.com/rm-hull/icon-tools/internal/png"
	"github.com/spf13/cobra"
)

const defaultInput = "src/assets/icon.png"

func main() {
	var debug bool
	var processOpts cmd.ProcessOptions
	var svgOpts cmd.SvgOptions
	var checkInput string
	var threshold int

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	input := internal.EnvString("INPUT", defaultInput)
	defaultThreshold, err := internal.EnvInt("THRESHOLD", png.DefaultWhiteThreshold)
	if err != nil {
		log.Fatal(err)
	}
	defaultMargin, err := internal.EnvInt("MARGIN", 10)
	if err != nil {
		log.Fatal(err)
	}
	defaultSize, err := internal.EnvInt("SIZE", 64)
	if err != nil {
		log.Fatal(err)
	}

	rootCmd := &cobra.Command{
		Use:           "icon-tools",
		Long:          `Icon image utilities: inspect, make transparent and crop, convert to SVG`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				internal.ShowVersion()
				internal.EnvironmentVars()
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log version and ICON_* environment variables")

	checkCmd := &cobra.Command{
		Use:   "check [--input <path>]",
		Short: "Show size, mode, transparency bounds and corner colours of an image",
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.Check(checkInput, c.OutOrStdout())
		},
	}
	checkCmd.Flags().StringVar(&checkInput, "input", input, "Path to input PNG")

	processCmd := &cobra.Command{
		Use:   "process [--input <path>] [--original <path>] [--output <path>] [--threshold <0-255>] [--margin <px>]",
		Short: "Make a white background transparent and crop to the content",
		RunE: func(c *cobra.Command, _ []string) error {
			if threshold < 0 || threshold > 255 {
				return fmt.Errorf("threshold must be between 0 and 255, got %d", threshold)
			}
			processOpts.Threshold = uint8(threshold)
			return cmd.Process(processOpts, c.OutOrStdout())
		},
	}
	processCmd.Flags().StringVar(&processOpts.Input, "input", input, "Path to input PNG")
	processCmd.Flags().StringVar(&processOpts.Original, "original", "src/assets/icon_original.png", "Where to save the thresholded, uncropped image")
	processCmd.Flags().StringVar(&processOpts.Output, "output", "src/assets/icon_processed.png", "Where to save the thresholded, cropped image")
	processCmd.Flags().IntVar(&threshold, "threshold", defaultThreshold, "Pixels with R, G and B all above this become transparent")
	processCmd.Flags().IntVar(&processOpts.Margin, "margin", defaultMargin, "Margin in pixels kept around the content when cropping")

	svgCmd := &cobra.Command{
		Use:   "svg [--input <path>] [--output <path>] [--size <px>] [--preview <path>] [--ico <path>]",
		Short: "Convert an image into a pixel-per-rect SVG favicon",
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.Svg(svgOpts, c.OutOrStdout())
		},
	}
	svgCmd.Flags().StringVar(&svgOpts.Input, "input", input, "Path to input PNG")
	svgCmd.Flags().StringVar(&svgOpts.Output, "output", "favicon.svg", "Path to output SVG")
	svgCmd.Flags().IntVar(&svgOpts.Size, "size", defaultSize, "Width and height of the favicon in pixels")
	svgCmd.Flags().StringVar(&svgOpts.Preview, "preview", "", "Render the generated SVG to this PNG path")
	svgCmd.Flags().StringVar(&svgOpts.Ico, "ico", "", "Also write a .ico favicon to this path")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(c *cobra.Command, _ []string) {
			fmt.Fprintln(c.OutOrStdout(), internal.Version())
		},
	}

	rootCmd.AddCommand(checkCmd, processCmd, svgCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
