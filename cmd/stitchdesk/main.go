// Command stitchdesk is a small terminal client for a StitchDesk shop:
// log in, list customers and orders, and watch the order dashboard.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"

	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/client"
	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/guard"
	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/logging"
	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/models"
	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/query"
	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/services"
	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/session"
)

type config struct {
	APIURL      string `env:"STITCHDESK_API_URL" envDefault:"http://localhost:8000/api"`
	SessionFile string `env:"STITCHDESK_SESSION_FILE" envDefault:""`
	LogLevel    string `env:"STITCHDESK_LOG_LEVEL" envDefault:"warn"`
	LogPretty   bool   `env:"STITCHDESK_LOG_PRETTY" envDefault:"true"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.SessionFile = home + "/.stitchdesk/session.json"
	}

	logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	})

	store := session.NewFileStore(cfg.SessionFile)
	c, err := client.New(client.Config{
		BaseURL: cfg.APIURL,
		Session: store,
		OnUnauthorized: func() {
			fmt.Fprintln(os.Stderr, "Session expired, please log in again.")
		},
		OnForbidden: func(msg string) {
			fmt.Fprintln(os.Stderr, "Subscription alert:", msg)
		},
	})
	if err != nil {
		return err
	}

	svc := services.New(c)
	ctx := context.Background()

	if len(args) == 0 {
		usage()
		return nil
	}

	switch args[0] {
	case "login":
		return cmdLogin(ctx, svc, args[1:])
	case "logout":
		return svc.Accounts.Logout(ctx)
	case "whoami":
		return cmdWhoami(ctx, store, svc)
	case "customers":
		return cmdCustomers(ctx, store, svc, args[1:])
	case "orders":
		return cmdOrders(ctx, store, svc, args[1:])
	case "dashboard":
		return cmdDashboard(ctx, store, svc)
	case "watch":
		return cmdWatch(ctx, store, svc)
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: stitchdesk <command>

Commands:
  login <email>       Log in (password read from stdin)
  logout              Log out and clear the stored session
  whoami              Show the logged-in user
  customers [search]  List customers
  orders [status]     List orders, optionally filtered by status
  dashboard           Show the order dashboard once
  watch               Watch the order dashboard, refreshing every 30s`)
}

// requireAuth stops a command early when no session is stored, instead of
// letting the first API call fail with a 401.
func requireAuth(ctx context.Context, store session.Store) error {
	if guard.New(store).RequireAuth(ctx) != guard.Allowed {
		return fmt.Errorf("not logged in, run: stitchdesk login <email>")
	}
	return nil
}

func cmdLogin(ctx context.Context, svc *services.Services, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: stitchdesk login <email>")
	}
	email := args[0]

	fmt.Fprint(os.Stderr, "Password: ")
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	password = strings.TrimRight(password, "\r\n")

	resp, err := svc.Accounts.Login(ctx, services.LoginInput{Email: email, Password: password})
	if err != nil {
		return err
	}

	if resp.Requires2FA {
		fmt.Fprint(os.Stderr, "OTP: ")
		otp, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read otp: %w", err)
		}
		resp, err = svc.Accounts.VerifyLoginOTP(ctx, email, strings.TrimRight(otp, "\r\n"))
		if err != nil {
			return err
		}
	}

	if resp.User != nil {
		fmt.Printf("Logged in as %s\n", resp.User.Email)
	} else {
		fmt.Println("Logged in")
	}
	return nil
}

func cmdWhoami(ctx context.Context, store session.Store, svc *services.Services) error {
	if err := requireAuth(ctx, store); err != nil {
		return err
	}
	user, err := svc.Accounts.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println("Logged in (no cached profile)")
		return nil
	}
	role := "user"
	if user.IsSuperuser {
		role = "superuser"
	}
	fmt.Printf("%s (%s)\n", user.Email, role)
	return nil
}

func cmdCustomers(ctx context.Context, store session.Store, svc *services.Services, args []string) error {
	if err := requireAuth(ctx, store); err != nil {
		return err
	}
	var params services.CustomerListParams
	if len(args) > 0 {
		params.Search = strings.Join(args, " ")
	}
	customers, err := svc.Customers.List(ctx, params)
	if err != nil {
		return err
	}
	for _, c := range customers {
		fmt.Printf("%s  %-24s %s\n", c.ID, c.Name, c.Phone)
	}
	fmt.Fprintf(os.Stderr, "%d customer(s)\n", len(customers))
	return nil
}

func cmdOrders(ctx context.Context, store session.Store, svc *services.Services, args []string) error {
	if err := requireAuth(ctx, store); err != nil {
		return err
	}
	var params services.OrderListParams
	if len(args) > 0 {
		params.Status = strings.ToUpper(args[0])
	}
	orders, err := svc.Orders.List(ctx, params)
	if err != nil {
		return err
	}
	for _, o := range orders {
		fmt.Printf("%-12s %-14s %-24s due %s\n", o.OrderNumber, o.Status, o.CustomerName, o.DeliveryDate)
	}
	fmt.Fprintf(os.Stderr, "%d order(s)\n", len(orders))
	return nil
}

func cmdDashboard(ctx context.Context, store session.Store, svc *services.Services) error {
	if err := requireAuth(ctx, store); err != nil {
		return err
	}
	stats, err := svc.Orders.DashboardStats(ctx)
	if err != nil {
		return err
	}
	printStats(stats)
	return nil
}

func cmdWatch(ctx context.Context, store session.Store, svc *services.Services) error {
	if err := requireAuth(ctx, store); err != nil {
		return err
	}

	cache := query.New(query.DefaultConfig())
	key := query.NewKey(services.ResourceDashboard, nil)

	poller := query.Poll(cache, key, 30*time.Second,
		func(pctx context.Context) (*models.DashboardStats, error) {
			return svc.Orders.DashboardStats(pctx)
		},
		func(stats *models.DashboardStats, err error) {
			if err != nil {
				fmt.Fprintln(os.Stderr, "Refresh failed:", err)
				return
			}
			fmt.Printf("\n--- %s ---\n", time.Now().Format("15:04:05"))
			printStats(stats)
		},
	)
	defer poller.Stop()

	log.Info().Msg("Watching dashboard, Ctrl+C to stop")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}

func printStats(stats *models.DashboardStats) {
	fmt.Printf("Total orders:   %d\n", stats.TotalOrders)
	fmt.Printf("Pending:        %d\n", stats.PendingOrders)
	fmt.Printf("In stitching:   %d\n", stats.InStitchingOrders)
	fmt.Printf("Ready:          %d\n", stats.ReadyOrders)
	fmt.Printf("Delivered:      %d\n", stats.DeliveredOrders)
	fmt.Printf("Due this week:  %d\n", stats.DueThisWeek)
	fmt.Printf("Revenue (mo):   %s\n", stats.RevenueThisMonth)
	fmt.Printf("Outstanding:    %s\n", stats.PendingPayments)
}
