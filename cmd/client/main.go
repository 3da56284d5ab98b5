package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"navkar-inquiry/internal/adapters/gateway"
	"navkar-inquiry/internal/adapters/session"
	"navkar-inquiry/internal/config"
	"navkar-inquiry/internal/core/domain"
	"navkar-inquiry/internal/core/services"
	"navkar-inquiry/internal/pkg/guard"
	"navkar-inquiry/internal/pkg/logger"
	"navkar-inquiry/internal/pkg/notify"
	"navkar-inquiry/internal/pkg/validate"
)

const usage = `Navkar Finance - loan inquiry client

Usage: inquiry <command> [flags]

Commands:
  register     create an account (customer or admin)
  login        authenticate and store the session
  logout       clear the stored session
  whoami       show the stored session
  list         show your inquiries once
  watch        show your inquiries, refreshing periodically
  add          submit a new inquiry
  edit         update an existing inquiry
  delete       delete an inquiry by id
  admin        show all inquiries and the status breakdown once
  admin-watch  show all inquiries, refreshing periodically
  approve      set an inquiry status to APPROVED
  reject       set an inquiry status to REJECTED
`

// app bundles the wired services behind the terminal commands.
type app struct {
	cfg       *config.Config
	sessions  *session.Store
	auth      *services.AuthService
	inquiries *services.InquiryService
}

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	logger.Init(cfg.IsDev())

	sessions := session.NewStore(cfg.Client.SessionFile)
	gw := gateway.New(cfg, sessions)
	notifier := notify.NewLogNotifier(logger.Log)

	a := &app{
		cfg:       cfg,
		sessions:  sessions,
		auth:      services.NewAuthService(gw, sessions, notifier),
		inquiries: services.NewInquiryService(gw, notifier),
	}

	if err := a.run(os.Args[1], os.Args[2:]); err != nil {
		os.Exit(1)
	}
}

func (a *app) run(cmd string, args []string) error {
	switch cmd {
	case "register":
		return a.cmdRegister(args)
	case "login":
		return a.cmdLogin(args)
	case "logout":
		return a.cmdLogout()
	case "whoami":
		return a.cmdWhoami()
	case "list":
		return a.cmdList()
	case "watch":
		return a.cmdWatch()
	case "add":
		return a.cmdAdd(args)
	case "edit":
		return a.cmdEdit(args)
	case "delete":
		return a.cmdDelete(args)
	case "admin":
		return a.cmdAdmin()
	case "admin-watch":
		return a.cmdAdminWatch()
	case "approve":
		return a.cmdSetStatus(args, domain.StatusApproved)
	case "reject":
		return a.cmdSetStatus(args, domain.StatusRejected)
	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// view resolves a route through the access guard before rendering it.
// A denied route redirects to the login entry point, exactly like the
// browser client.
func (a *app) view(route string) error {
	resolved := guard.Resolve(route, a.sessions.Current())
	if resolved != route {
		fmt.Println("Redirecting to /login - please login first")
		return fmt.Errorf("access to %s denied", route)
	}
	return nil
}

func (a *app) cmdRegister(args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("u", "", "Username")
	pass := fs.String("p", "", "Password")
	role := fs.String("role", "USER", "Role: USER (customer) or ADMIN")
	fs.Parse(args)

	if *username == "" || *pass == "" {
		fmt.Println("Username and password are required")
		return errors.New("missing credentials")
	}

	_, err := a.auth.Register(context.Background(), *username, *pass, domain.Role(*role))
	return err
}

func (a *app) cmdLogin(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("u", "", "Username")
	pass := fs.String("p", "", "Password")
	fs.Parse(args)

	if *username == "" || *pass == "" {
		fmt.Println("Username and password are required")
		return errors.New("missing credentials")
	}

	landing, err := a.auth.Login(context.Background(), *username, *pass)
	if err != nil {
		return err
	}
	fmt.Printf("Welcome %s - continue at %s\n", *username, landing)
	return nil
}

func (a *app) cmdLogout() error {
	if _, err := a.auth.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

func (a *app) cmdWhoami() error {
	sess := a.sessions.Current()
	if !sess.Authenticated() {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("Welcome %s (role %s)\n", sess.DisplayName, sess.Role)
	return nil
}

func (a *app) cmdList() error {
	if err := a.view("/inquiries"); err != nil {
		return err
	}

	records, err := a.inquiries.ListMine(context.Background())
	if err != nil {
		return err
	}
	renderCustomerTable(os.Stdout, records)
	return nil
}

func (a *app) cmdWatch() error {
	if err := a.view("/inquiries"); err != nil {
		return err
	}

	fmt.Printf("Refreshing every %s - press Ctrl-C to stop\n", a.cfg.Client.CustomerRefresh)
	a.watch(a.cfg.Client.CustomerRefresh, a.inquiries.ListMine, func(records []domain.InquiryRecord) {
		renderCustomerTable(os.Stdout, records)
	})
	return nil
}

func (a *app) cmdAdd(args []string) error {
	if err := a.view("/add-inquiry"); err != nil {
		return err
	}

	fs := flag.NewFlagSet("add", flag.ExitOnError)
	fields := registerDraftFlags(fs)
	fs.Parse(args)

	if _, err := a.inquiries.Submit(context.Background(), fields.merge(domain.FormDraft{})); err != nil {
		printFieldErrors(err)
		return err
	}
	return nil
}

func (a *app) cmdEdit(args []string) error {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	id := fs.Uint("id", 0, "Inquiry id")
	fields := registerDraftFlags(fs)
	fs.Parse(args)

	if *id == 0 {
		fmt.Println("-id is required")
		return errors.New("missing id")
	}
	if err := a.view(fmt.Sprintf("/update-inquiry/%d", *id)); err != nil {
		return err
	}

	// pre-fill from the stored record, then apply the provided fields
	current, err := a.inquiries.LoadDraft(context.Background(), *id)
	if err != nil {
		return err
	}

	if _, err := a.inquiries.UpdateRecord(context.Background(), *id, fields.merge(current)); err != nil {
		printFieldErrors(err)
		return err
	}
	return nil
}

func (a *app) cmdDelete(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Uint("id", 0, "Inquiry id")
	yes := fs.Bool("yes", false, "Skip confirmation")
	fs.Parse(args)

	if *id == 0 {
		fmt.Println("-id is required")
		return errors.New("missing id")
	}
	if err := a.view("/inquiries"); err != nil {
		return err
	}
	if !*yes && !confirm("Are you sure you want to delete this inquiry?") {
		return nil
	}

	return a.inquiries.Delete(context.Background(), *id)
}

func (a *app) cmdAdmin() error {
	if err := a.view("/admin"); err != nil {
		return err
	}

	records, err := a.inquiries.ListAll(context.Background())
	if err != nil {
		return err
	}
	renderAdminView(os.Stdout, records)
	return nil
}

func (a *app) cmdAdminWatch() error {
	if err := a.view("/admin"); err != nil {
		return err
	}

	fmt.Printf("Refreshing every %s - press Ctrl-C to stop\n", a.cfg.Client.AdminRefresh)
	a.watch(a.cfg.Client.AdminRefresh, a.inquiries.ListAll, func(records []domain.InquiryRecord) {
		renderAdminView(os.Stdout, records)
	})
	return nil
}

func (a *app) cmdSetStatus(args []string, status domain.InquiryStatus) error {
	fs := flag.NewFlagSet(strings.ToLower(string(status)), flag.ExitOnError)
	id := fs.Uint("id", 0, "Inquiry id")
	yes := fs.Bool("yes", false, "Skip confirmation")
	fs.Parse(args)

	if *id == 0 {
		fmt.Println("-id is required")
		return errors.New("missing id")
	}
	if err := a.view("/admin"); err != nil {
		return err
	}
	if !*yes && !confirm(fmt.Sprintf("Set status to %s?", status)) {
		return nil
	}

	return a.inquiries.SetStatus(context.Background(), *id, status)
}

// watch runs a refresher bound to the view's lifetime: it starts on
// entry and is stopped when the user tears the view down with Ctrl-C.
func (a *app) watch(interval time.Duration, fetch services.ListFetcher, render func([]domain.InquiryRecord)) {
	refresher := services.NewRefresher(interval, fetch, render)
	refresher.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	refresher.Stop()
	fmt.Println("\nStopped")
}

// draftFlags holds the inquiry form field flags.
type draftFlags struct {
	name    *string
	mobile  *string
	email   *string
	address *string
	work    *string
	loan    *string
	income  *string
	past    *string
	pan     *string
}

// registerDraftFlags registers the inquiry form fields on a flag set.
func registerDraftFlags(fs *flag.FlagSet) *draftFlags {
	return &draftFlags{
		name:    fs.String("name", "", "Applicant name"),
		mobile:  fs.String("mobile", "", "Mobile number (10 digits)"),
		email:   fs.String("email", "", "Email address"),
		address: fs.String("address", "", "Address"),
		work:    fs.String("work", "", "Work type"),
		loan:    fs.String("loan", "", "Loan type: "+strings.Join(domain.LoanTypes, ", ")),
		income:  fs.String("income", "", "Annual income"),
		past:    fs.String("past-loan", "", "Past loan: yes or no"),
		pan:     fs.String("pan", "", "PAN card (AAAAA9999A)"),
	}
}

// merge lays the provided flag values over a seed draft and applies the
// same input sanitizers the form applies while typing. Empty flags keep
// the seed's values, which is what edit pre-fill relies on.
func (f *draftFlags) merge(seed domain.FormDraft) domain.FormDraft {
	set := func(dst *string, val string) {
		if val != "" {
			*dst = val
		}
	}
	set(&seed.Name, *f.name)
	set(&seed.MobileNumber, *f.mobile)
	set(&seed.Email, *f.email)
	set(&seed.Address, *f.address)
	set(&seed.WorkType, *f.work)
	set(&seed.LoanType, *f.loan)
	set(&seed.AnnualIncome, *f.income)
	set(&seed.PastLoan, strings.ToLower(*f.past))
	set(&seed.PanCard, *f.pan)

	return validate.SanitizeDraft(seed)
}

// printFieldErrors lists field validation messages next to their fields.
func printFieldErrors(err error) {
	var vErr *services.ValidationError
	if !errors.As(err, &vErr) {
		return
	}
	for field, msg := range vErr.Fields {
		fmt.Printf("  %s: %s\n", field, msg)
	}
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
