package cli

import (
	"fmt"
	"strings"

	"healthflow/internal/adapters/llm"
	"healthflow/internal/domain/chat"
	"healthflow/internal/domain/timeline"
	"healthflow/internal/platform/logger"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newContextCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "context",
		Short: "Print the timeline context sent to the model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := loadEvents(file, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if out := chat.FormatContext(events); out != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Events file (YAML or JSON). Defaults to the demo timeline")
	return cmd
}

func newAskCmd(opts Options) *cobra.Command {
	var (
		file    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask the assistant about a timeline",
		Long: `Manda el mensaje al backend configurado (LLM_PROVIDER) con el timeline como contexto.
Si el backend falla o no hay API key se imprime la respuesta local.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.TrimSpace(strings.Join(args, " "))
			if message == "" {
				return fmt.Errorf("message is required")
			}

			cfg, err := opts.LoadConfig()
			if err != nil {
				return err
			}
			backend, err := opts.NewBackend(cfg)
			if err != nil {
				return err
			}

			events, err := loadEvents(file, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			level := logger.Error
			if verbose {
				level = logger.Debug
			}
			log := logger.New(logger.Options{Level: level, App: "healthctl", Output: cmd.ErrOrStderr()})

			responder := chat.NewResponder(chat.Config{
				Model:     llm.Model(cfg),
				MaxTokens: cfg.ChatMaxTokens,
				Timeout:   cfg.ChatTimeout,
			}, backend, chat.WithLogger(log))

			reply := responder.Reply(cmd.Context(), message, events)
			fmt.Fprintln(cmd.OutOrStdout(), reply.Content)
			if verbose {
				log.Info("reply", map[string]any{"source": string(reply.Source), "rule": reply.Rule})
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Events file (YAML or JSON). Defaults to the demo timeline")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log backend errors and reply source to stderr")
	return cmd
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the demo timeline as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			demo := timeline.DemoEvents()
			out := make([]timeline.Input, 0, len(demo))
			for _, e := range demo {
				out = append(out, timeline.InputFrom(e))
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer func() { _ = enc.Close() }()
			return enc.Encode(out)
		},
	}
}
