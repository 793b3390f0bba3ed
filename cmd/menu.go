package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"menu-manager/core/config"
	"menu-manager/core/logger"
	"menu-manager/core/selector"
	"menu-manager/feature/menu"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	sampleCount int
	exportPath  string
)

// menuCmd represents the menu command
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Manage the menu from the command line",
	Long:  `Lists, edits, samples and syncs the menu using the same staging store and baseline as the server.`,
}

var menuListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active dishes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMenu(cmd.Context(), func(ctx context.Context, svc *menu.Service) error {
			printView(svc.Get(ctx))
			return nil
		})
	},
}

var menuAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a dish",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMenu(cmd.Context(), func(ctx context.Context, svc *menu.Service) error {
			view, err := svc.Add(ctx, args[0])
			if err != nil {
				return err
			}
			printView(view)
			return nil
		})
	},
}

var menuRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove a dish",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMenu(cmd.Context(), func(ctx context.Context, svc *menu.Service) error {
			view, err := svc.Delete(ctx, args[0])
			if err != nil {
				return err
			}
			printView(view)
			return nil
		})
	},
}

var menuRenameCmd = &cobra.Command{
	Use:   "rename [old] [new]",
	Short: "Rename a dish",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMenu(cmd.Context(), func(ctx context.Context, svc *menu.Service) error {
			view, err := svc.Rename(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			printView(view)
			return nil
		})
	},
}

var menuSampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Pick random dishes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMenu(cmd.Context(), func(ctx context.Context, svc *menu.Service) error {
			result, err := svc.Sample(ctx, sampleCount)
			if err != nil {
				return err
			}
			printSample(result)
			return nil
		})
	},
}

var menuSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Promote staged changes to the baseline and export the document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMenu(cmd.Context(), func(ctx context.Context, svc *menu.Service) error {
			result, err := svc.Sync(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Synced %d dishes\n", len(result.Document.Menu))
			if result.Location != "" {
				fmt.Printf("Exported to: %s\n", result.Location)
			}
			fmt.Println("Replace the baseline document with the export to publish it.")
			return nil
		})
	},
}

var menuResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard staged changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMenu(cmd.Context(), func(ctx context.Context, svc *menu.Service) error {
			view, err := svc.Reset(ctx)
			if err != nil {
				return err
			}
			printView(view)
			return nil
		})
	},
}

var menuExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active menu as a baseline document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMenu(cmd.Context(), func(ctx context.Context, svc *menu.Service) error {
			data, err := svc.Export(ctx).Encode()
			if err != nil {
				return err
			}
			if exportPath == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(exportPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", exportPath, err)
			}
			fmt.Printf("Document written to %s\n", exportPath)
			return nil
		})
	},
}

var menuStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the sync status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMenu(cmd.Context(), func(ctx context.Context, svc *menu.Service) error {
			status := svc.Status(ctx)
			fmt.Printf("Mode:               %s\n", status.Mode)
			fmt.Printf("State:              %s\n", status.State)
			fmt.Printf("Data source:        %s\n", status.DataSource)
			fmt.Printf("Staged changes:     %t\n", status.HasStagedChanges)
			fmt.Printf("Baseline available: %t\n", status.BaselineAvailable)
			return nil
		})
	},
}

func init() {
	RootCmd.AddCommand(menuCmd)
	menuCmd.AddCommand(menuListCmd, menuAddCmd, menuRemoveCmd, menuRenameCmd,
		menuSampleCmd, menuSyncCmd, menuResetCmd, menuExportCmd, menuStatusCmd)

	menuSampleCmd.Flags().IntVarP(&sampleCount, "count", "n", 1, "Number of dishes to pick")
	menuExportCmd.Flags().StringVarP(&exportPath, "output", "o", "", "Write the document to a file instead of stdout")
}

// withMenu loads the configured menu session and runs fn against it.
func withMenu(ctx context.Context, fn func(ctx context.Context, svc *menu.Service) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	svcs, err := newServices(cfg, logg)
	if err != nil {
		return err
	}

	svc := menu.NewService(svcs.coordinator, nil, logg)
	if res := svc.Load(ctx); res.BaselineErr != nil {
		logg.Warn("Baseline unavailable", zap.Error(res.BaselineErr))
	}

	return fn(ctx, svc)
}

func printView(view menu.View) {
	fmt.Printf("Mode: %s | State: %s | Source: %s\n", view.Mode, view.State, view.DataSource)
	if view.Divergent {
		fmt.Println("Staged menu differs from the baseline. Run 'menu sync' or 'menu reset'.")
	}
	if !view.BaselineUpdated.IsZero() {
		fmt.Printf("Baseline updated: %s\n", view.BaselineUpdated.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("\nDishes (%d):\n", len(view.Dishes))
	for i, dish := range view.Dishes {
		fmt.Printf("  %2d. %s\n", i+1, dish)
	}
}

func printSample(result selector.Result) {
	if result.Clamped {
		fmt.Printf("Requested %d, picking %d\n", result.Requested, result.Effective)
	}
	fmt.Println(strings.Join(result.Dishes, ", "))
}
