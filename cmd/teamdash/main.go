// teamdash is a team task-tracking dashboard: a REST API and an MCP server
// over a shared JSON-document store, plus a terminal kanban board.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/teamdash/teamdash/internal/agent"
	"github.com/teamdash/teamdash/internal/config"
	"github.com/teamdash/teamdash/internal/handler"
	"github.com/teamdash/teamdash/internal/handler/server"
	"github.com/teamdash/teamdash/internal/repository/jsonstore"
	"github.com/teamdash/teamdash/internal/service"
	"github.com/teamdash/teamdash/internal/store"
	"github.com/teamdash/teamdash/internal/tui"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// services bundles the four domain services wired over one store handle.
type services struct {
	team    service.TeamService
	user    service.UserService
	task    service.TaskService
	comment service.CommentService
}

func buildServices(cfg *config.Config) services {
	st := store.MustOpen(cfg.DataDir)

	teamRepo := jsonstore.NewTeamRepository(st)
	userRepo := jsonstore.NewUserRepository(st)
	taskRepo := jsonstore.NewTaskRepository(st)
	commentRepo := jsonstore.NewCommentRepository(st)

	return services{
		team:    service.NewTeamService(teamRepo),
		user:    service.NewUserService(userRepo),
		task:    service.NewTaskService(taskRepo, teamRepo, commentRepo),
		comment: service.NewCommentService(commentRepo),
	}
}

func main() {
	root := &cobra.Command{
		Use:           "teamdash",
		Short:         "Team task-tracking dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), mcpCmd(), boardCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			svcs := buildServices(cfg)

			h := handler.NewHandler(svcs.team, svcs.user, svcs.task, svcs.comment)
			srv := server.NewServer(h, cfg.Addr)

			errCh := make(chan error, 1)
			go func() {
				if err := srv.Start(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return fmt.Errorf("server failed to start: %w", err)
			case <-quit:
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	}
}

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP server (stdio transport)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			svcs := buildServices(cfg)

			// Stdout belongs to the stdio transport; anything we log must
			// go to stderr.
			log.SetOutput(os.Stderr)
			log.Println("Team Dashboard MCP Server running on stdio")

			agent.Version = version
			s := agent.New(svcs.team, svcs.user, svcs.task, svcs.comment)
			return mcpserver.ServeStdio(s)
		},
	}
}

func boardCmd() *cobra.Command {
	var teamID string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show a team's kanban board in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			svcs := buildServices(cfg)

			m := tui.New(svcs.task, svcs.team, teamID)
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
	cmd.Flags().StringVar(&teamID, "team", "", "team ID to display")
	cmd.MarkFlagRequired("team")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("teamdash v%s\n", version)
		},
	}
}
