package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/eolymp/go-markup"
	"github.com/spf13/cobra"
)

func main() {
	var (
		output  string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "markup",
		Short: "Render demo HTML document",
		Long: `Builds a small HTML document with head and body sections
and prints it, or writes it to the file given with --output.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			return markup.Build(output, demo, markup.WithLogger(logger), markup.WithStdout(cmd.OutOrStdout()))
		},
	}

	rootCmd.Flags().StringVarP(&output, "output", "o", "", "write document to the file instead of standard output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func demo(doc *markup.Document) {
	doc.Append(markup.Section("head").With(func(head *markup.Node) {
		head.Append(markup.Element("title", markup.Text("hello")))
	}))

	doc.Append(markup.Section("body").With(func(body *markup.Node) {
		body.Append(markup.Element("h1", markup.Class("main-text"), markup.Text("Test")))

		body.Append(markup.Element("div", markup.Class("container", "container-fluid"), markup.Attr("id", "lead")).With(func(div *markup.Node) {
			div.Append(markup.Element("p", markup.Attr("id", "text"), markup.Text("another test")))
			div.Append(markup.Element("img",
				markup.Single(),
				markup.Attr("href", ""),
				markup.Attr("src", "image/icon.png"),
				markup.Attr("data_image", "responsive"),
				markup.Attr("alt", "img test"),
			))
		}))
	}))
}
