// Package cli implementa healthctl: formatear el contexto del timeline y probar el chat desde la terminal.
package cli

import (
	"fmt"
	"os"

	"healthflow/internal/adapters/llm"
	"healthflow/internal/config"
	"healthflow/internal/ports/completion"

	"github.com/spf13/cobra"
)

var version = "dev"

// Options permite reemplazar config y backend (tests).
type Options struct {
	LoadConfig func() (*config.Config, error)
	NewBackend func(cfg *config.Config) (completion.Backend, error)
}

func (o Options) withDefaults() Options {
	if o.LoadConfig == nil {
		o.LoadConfig = config.Load
	}
	if o.NewBackend == nil {
		o.NewBackend = llm.NewBackend
	}
	return o
}

func NewRootCmd(opts Options) *cobra.Command {
	opts = opts.withDefaults()

	root := &cobra.Command{
		Use:   "healthctl",
		Short: "HealthFlow+ timeline and chat tools",
		Long: `healthctl trabaja con archivos de timeline (YAML o JSON) sin levantar la API.

  healthctl demo > events.yaml              # timeline de ejemplo
  healthctl context --file events.yaml      # contexto que recibe el modelo
  healthctl ask "what medications am I on" --file events.yaml`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.AddCommand(
		newContextCmd(),
		newAskCmd(opts),
		newDemoCmd(),
	)
	return root
}

func Execute() {
	if err := NewRootCmd(Options{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
