// slidecastctl manages slideshows and shared media against a running server.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/LegalDragon/slidecast/api/client"
	"github.com/LegalDragon/slidecast/api/models"
)

var (
	serverFlag string
	mc         *client.MediaClient
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "slidecastctl",
		Short: "Slidecast CLI - manage slideshows and shared media",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			mc = client.NewMediaClient(serverFlag)
		},
	}
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "http://localhost:8080", "base URL of the slidecast server")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all slideshows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shows, err := mc.ListSlideshows()
			if err != nil {
				return err
			}
			for _, show := range shows {
				cmd.Printf("%s\t%s\n", show.Code, show.Title)
			}
			return nil
		},
	}
	rootCmd.AddCommand(listCmd)

	var (
		titleFlag    string
		autoPlayFlag bool
		loopFlag     bool
		skipFlag     bool
		progressFlag bool
	)
	createCmd := &cobra.Command{
		Use:   "create [code]",
		Short: "Create a slideshow",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.CreateSlideshowRequest{
				Title:        titleFlag,
				AutoPlay:     autoPlayFlag,
				Loop:         loopFlag,
				AllowSkip:    skipFlag,
				ShowProgress: progressFlag,
			}
			if len(args) == 1 {
				req.Code = args[0]
			}
			show, err := mc.CreateSlideshow(req)
			if err != nil {
				return err
			}
			cmd.Printf("created slideshow %s (id %d)\n", show.Code, show.ID)
			return nil
		},
	}
	createCmd.Flags().StringVar(&titleFlag, "title", "", "slideshow title")
	createCmd.Flags().BoolVar(&autoPlayFlag, "autoplay", true, "start playback automatically")
	createCmd.Flags().BoolVar(&loopFlag, "loop", false, "loop back to the first slide")
	createCmd.Flags().BoolVar(&skipFlag, "allow-skip", true, "let viewers skip the slideshow")
	createCmd.Flags().BoolVar(&progressFlag, "progress", true, "show the progress bar")
	rootCmd.AddCommand(createCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete [code]",
		Short: "Delete a slideshow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := mc.DeleteSlideshow(args[0]); err != nil {
				return err
			}
			cmd.Printf("deleted slideshow %s\n", args[0])
			return nil
		},
	}
	rootCmd.AddCommand(deleteCmd)

	urlCmd := &cobra.Command{
		Use:   "url [code]",
		Short: "Print the player URL for a slideshow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Printf("%s/play/%s\n", serverFlag, args[0])
			return nil
		},
	}
	rootCmd.AddCommand(urlCmd)

	uploadCmd := &cobra.Command{
		Use:   "upload [file...]",
		Short: "Upload media files into the shared pool",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				path, err := filepath.Abs(arg)
				if err != nil {
					return err
				}
				resp, err := mc.UploadMedia(path)
				if err != nil {
					return fmt.Errorf("upload %s: %w", arg, err)
				}
				cmd.Printf("uploaded %s as %s (%s)\n", arg, resp.Name, resp.Kind)
			}
			return nil
		},
	}
	rootCmd.AddCommand(uploadCmd)

	mediaCmd := &cobra.Command{
		Use:   "media",
		Short: "List the shared media pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			media, err := mc.ListSharedMedia()
			if err != nil {
				return err
			}
			for _, m := range media {
				cmd.Printf("%s\t%s\t%s\n", m.Name, m.Kind, m.URL)
			}
			return nil
		},
	}
	rootCmd.AddCommand(mediaCmd)

	return rootCmd
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
