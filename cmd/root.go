/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/valpere/polyglot/internal/args"
	"github.com/valpere/polyglot/internal/locale"
)

const helpTemplate = `{{.Long}}

Usage: {{.UseLine}}

Arguments

    source      The source language to translate from (default: system language)
    target      The target language to translate to
    text        The text to translate (default: one line from stdin)

Options

    -?|--help   Display this help information

Examples

{{.Example}}
`

var rootCmd = &cobra.Command{
	Use:   "polyglot [source]=[target] [text...]",
	Short: "CLI for Google Translate and MyMemory",
	Long: `polyglot - CLI for Google Translate and MyMemory

Translates a line of text with a single request to the translation service
and prints the result. Errors go to stderr with a non-zero exit status.

Configuration is read from POLYGLOT_* environment variables and
$HOME/.polyglot.yaml (or the file named by POLYGLOT_CONFIG):

    service          google (default) or mymemory
    endpoint         override the service URL
    timeout          request timeout, e.g. 10s (default 30s)
    default_source   language used for "=target" (default: system locale)
    mymemory_email   address sent to MyMemory for a higher daily quota
    user_agent       User-Agent header for the request
    log_level        logrus level for stderr diagnostics (default warn)`,
	Example: `    #1 Translate to Italian using the current system language
    $ polyglot =it Hi, how are you?
    Ciao, come stai?

    #2 Translate from Italian to Russian using pipeline
    $ polyglot =it Hi, how are you? | polyglot it=ru`,
	// The [source]=[target] grammar owns argv, including "-?" and "--help".
	DisableFlagParsing:    true,
	DisableFlagsInUseLine: true,
	SilenceUsage:          true,
	Args:                  cobra.ArbitraryArgs,
	RunE:                  runTranslate,
}

func init() {
	rootCmd.SetHelpTemplate(helpTemplate)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(exitCode(err))
	}
}

func runTranslate(cmd *cobra.Command, argv []string) error {
	// Help and argument errors do not depend on configuration.
	help, err := args.Check(argv)
	if err != nil {
		return err
	}
	if help {
		return showHelp(cmd)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	parser := &args.Parser{
		Stdin: cmd.InOrStdin(),
		DefaultSource: func() string {
			if cfg.DefaultSource != "" {
				return cfg.DefaultSource
			}
			return locale.Current()
		},
	}

	inv, err := parser.Parse(argv)
	if err != nil {
		return err
	}

	svc, err := buildService(cfg)
	if err != nil {
		return err
	}

	entry := log.WithFields(logrus.Fields{
		"request_id":  uuid.New().String(),
		"service":     svc.Name(),
		"source_lang": inv.Request.SourceLang,
		"target_lang": inv.Request.TargetLang,
	})
	entry.WithField("chars", len([]rune(inv.Request.Text))).Debug("Sending translation request")

	result, err := svc.Translate(cmd.Context(), inv.Request)
	if result != nil {
		entry = entry.WithField("latency", result.Latency)
	}
	if err != nil {
		entry.WithField("kind", errorKind(err)).Debug("Translation failed")
		return err
	}

	entry.WithField("detected_source", result.Metadata["detected_source"]).Debug("Translation completed")

	_, err = fmt.Fprintln(cmd.OutOrStdout(), result.TranslatedText)
	return err
}

// showHelp renders help on stderr so it never ends up in a pipeline.
func showHelp(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	cmd.SetOut(cmd.ErrOrStderr())
	defer cmd.SetOut(out)
	return cmd.Help()
}
