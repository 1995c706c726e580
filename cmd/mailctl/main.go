package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"xisms.app/internal/app"
	"xisms.app/internal/config"
	"xisms.app/internal/core/mailtemplate"
	"xisms.app/internal/core/verification"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	_ = godotenv.Load()

	var err error
	switch command := os.Args[1]; command {
	case "send":
		err = withApplication(sendCode)
	case "send-html":
		err = withApplication(sendHTML)
	case "preview":
		err = preview()
	case "purge":
		err = withApplication(purge)
	case "status":
		err = withApplication(status)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("XiSMS mailer control")
	fmt.Println("Usage: mailctl <command> [args]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  send <email>                      - Issue and deliver a verification code")
	fmt.Println("  send-html <email> <subject> <file> - Deliver a pre-rendered HTML file")
	fmt.Println("  preview [code]                    - Print the code email HTML to stdout")
	fmt.Println("  purge                             - Remove expired codes from the store")
	fmt.Println("  status                            - Run the component health checks")
	fmt.Println("")
	fmt.Println("send requires CODE_STORE=redis or CODE_STORE=database so the code can be verified later.")
}

func withApplication(run func(ctx context.Context, application *app.Application) error) error {
	application, err := app.NewApplication()
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	defer func() { _ = application.Shutdown(ctx) }()

	return run(ctx, application)
}

func sendCode(ctx context.Context, application *app.Application) error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: mailctl send <email>")
	}
	if err := checkSendStore(application.Config()); err != nil {
		return err
	}

	result, err := application.GetVerificationUseCase().SendCode(ctx, verification.SendCodeParams{Email: os.Args[2]})
	state := verification.TerminalState(err)
	if err != nil {
		return fmt.Errorf("%s: %w", state, err)
	}

	fmt.Printf("%s via %s (message %s)\n", state, result.Provider, result.MessageID)
	return nil
}

// checkSendStore refuses the in-process store: a code issued by a one-shot
// command would vanish on exit and could never be verified.
func checkSendStore(cfg *config.Config) error {
	if cfg.Code.Store == config.CodeStoreMemory {
		return fmt.Errorf("send needs a shared code store: set CODE_STORE to redis or database")
	}
	return nil
}

func sendHTML(ctx context.Context, application *app.Application) error {
	if len(os.Args) < 5 {
		return fmt.Errorf("usage: mailctl send-html <email> <subject> <file>")
	}

	body, err := os.ReadFile(os.Args[4])
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	result, err := application.GetVerificationUseCase().SendEmail(ctx, verification.SendEmailParams{
		To:       os.Args[2],
		Subject:  os.Args[3],
		HTMLBody: string(body),
	})
	if err != nil {
		return err
	}

	fmt.Printf("sent via %s (message %s)\n", result.Provider, result.MessageID)
	return nil
}

// preview renders without touching the store or a provider, so only the
// brand and code settings need to be valid.
func preview() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	code := "123456"
	if len(os.Args) > 2 {
		code = os.Args[2]
	}

	renderer := mailtemplate.NewRenderer(mailtemplate.Brand{
		Name:       cfg.Brand.Name,
		TermsURL:   cfg.Brand.TermsURL,
		PrivacyURL: cfg.Brand.PrivacyURL,
		ContactURL: cfg.Brand.ContactURL,
	})
	html, err := renderer.RenderCode(mailtemplate.CodeTemplateParams{Code: code, Intro: cfg.Code.Intro})
	if err != nil {
		return err
	}

	fmt.Print(html)
	return nil
}

func purge(ctx context.Context, application *app.Application) error {
	removed, err := application.GetVerificationUseCase().PurgeExpired(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("removed %d expired codes\n", removed)
	return nil
}

func status(ctx context.Context, application *app.Application) error {
	results := application.HealthChecker().CheckAll(ctx)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	unhealthy := 0
	for _, name := range names {
		result := results[name]
		line := fmt.Sprintf("%-10s %s", name, result.Status)
		if result.Error != "" {
			line += " (" + result.Error + ")"
		}
		fmt.Println(line)
		if !result.IsHealthy() {
			unhealthy++
		}
	}

	if unhealthy > 0 {
		return fmt.Errorf("%d unhealthy components", unhealthy)
	}
	return nil
}
