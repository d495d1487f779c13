package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"eventdesk/internal/api"
	"eventdesk/internal/auth"
	"eventdesk/internal/availability"
	"eventdesk/internal/calendar"
	"eventdesk/internal/config"
	"eventdesk/internal/export"
	"eventdesk/internal/model"
	"eventdesk/internal/session"
	"eventdesk/internal/validate"
)

type app struct {
	cfg    *config.Config
	client *api.Client
	store  *session.Store
	auth   *auth.Service
	avail  *availability.Service
	logger *zerolog.Logger
}

func (a *app) usage() {
	fmt.Fprintln(os.Stderr, `usage: eventdesk <command> [flags]

  login <email> <password>        authenticate with email and password
  login-phone <phone> <otp>       authenticate with phone and one-time code
  signup                          register a manager account (see flags)
  signup-phone <name> <phone> <otp>  register with a verified phone number
  logout                          drop the stored session
  me                              verify the session and show the profile
  profile                         update profile fields (see flags)
  verify-aadhar <number>          submit Aadhar number for verification
  change-password <old> <new>     change the account password
  calendar                        show the derived month calendar
  day <date>                      show one date's record, slots and events
  set <date>                      open a date for booking
  block <date>                    block a date
  weekend                         open all weekend days of a month
  bookings                        list bookings
  booking-status <id> <status>    confirm, cancel or complete a booking
  export-bookings                 write the month's bookings to xlsx
  stats                           show the dashboard summary
  broadcasts                      list broadcast requests
  accept <id>                     accept a broadcast request
  services                        list the service catalog
  reviews                         list customer reviews and the rating summary
  watch                           run health and metrics endpoints`)
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.cmdLogin(ctx, args)
	case "login-phone":
		return a.cmdLoginPhone(ctx, args)
	case "signup":
		return a.cmdSignup(ctx, args)
	case "signup-phone":
		return a.cmdSignupPhone(ctx, args)
	case "logout":
		return a.auth.Logout()
	case "me":
		return a.cmdMe(ctx)
	case "profile":
		return a.cmdProfile(ctx, args)
	case "verify-aadhar":
		return a.cmdVerifyAadhar(ctx, args)
	case "change-password":
		return a.cmdChangePassword(ctx, args)
	case "calendar":
		return a.cmdCalendar(ctx, args)
	case "day":
		return a.cmdDay(ctx, args)
	case "set":
		return a.cmdSet(ctx, args)
	case "block":
		return a.cmdBlock(ctx, args)
	case "weekend":
		return a.cmdWeekend(ctx, args)
	case "bookings":
		return a.cmdBookings(ctx, args)
	case "booking-status":
		return a.cmdBookingStatus(ctx, args)
	case "export-bookings":
		return a.cmdExportBookings(ctx, args)
	case "stats":
		return a.cmdStats(ctx)
	case "broadcasts":
		return a.cmdBroadcasts(ctx, args)
	case "accept":
		return a.cmdAccept(ctx, args)
	case "services":
		return a.cmdServices(ctx, args)
	case "reviews":
		return a.cmdReviews(ctx, args)
	default:
		a.usage()
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: login <email> <password>")
	}
	user, err := a.auth.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *app) cmdLoginPhone(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: login-phone <phone> <otp>")
	}
	user, err := a.auth.LoginWithPhone(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("logged in as %s\n", user.Name)
	return nil
}

func (a *app) cmdSignup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	var form struct{ name, email, phone, password, address string }
	fs.StringVar(&form.name, "name", "", "full name")
	fs.StringVar(&form.email, "email", "", "email address")
	fs.StringVar(&form.phone, "phone", "", "phone number")
	fs.StringVar(&form.password, "password", "", "password")
	fs.StringVar(&form.address, "address", "", "business address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.auth.Signup(ctx, validate.SignupForm{
		Name:     form.name,
		Email:    form.email,
		Phone:    form.phone,
		Password: form.password,
		Address:  form.address,
	})
	if err != nil {
		return err
	}
	fmt.Printf("registered %s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *app) cmdSignupPhone(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: signup-phone <name> <phone> <otp>")
	}
	user, err := a.auth.SignupWithPhone(ctx, args[0], args[1], args[2])
	if err != nil {
		return err
	}
	fmt.Printf("registered %s\n", user.Name)
	return nil
}

func (a *app) cmdMe(ctx context.Context) error {
	user, err := a.auth.Restore(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> phone=%s aadhar=%s\n", user.Name, user.Email, user.Phone, user.AadharStatus)
	return nil
}

func (a *app) cmdProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	var form struct{ name, email, phone, address string }
	fs.StringVar(&form.name, "name", "", "full name")
	fs.StringVar(&form.email, "email", "", "email address")
	fs.StringVar(&form.phone, "phone", "", "phone number")
	fs.StringVar(&form.address, "address", "", "business address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.auth.UpdateProfile(ctx, validate.ProfileForm{
		Name:    form.name,
		Email:   form.email,
		Phone:   form.phone,
		Address: form.address,
	})
	if err != nil {
		return err
	}
	fmt.Printf("profile updated: %s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *app) cmdVerifyAadhar(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: verify-aadhar <number>")
	}
	user, err := a.auth.VerifyAadhar(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("aadhar status: %s\n", user.AadharStatus)
	return nil
}

func (a *app) cmdChangePassword(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: change-password <current> <new>")
	}
	if err := a.auth.ChangePassword(ctx, args[0], args[1]); err != nil {
		return err
	}
	fmt.Println("password changed")
	return nil
}

func monthFlags(fs *flag.FlagSet) (*int, *int) {
	now := time.Now()
	year := fs.Int("year", now.Year(), "calendar year")
	month := fs.Int("month", int(now.Month()), "calendar month (1-12)")
	return year, month
}

func (a *app) cmdCalendar(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("calendar", flag.ContinueOnError)
	year, month := monthFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	bookings, availabilities, err := a.monthData(ctx, *year, time.Month(*month))
	if err != nil {
		return err
	}

	days := calendar.MonthView(*year, time.Month(*month), bookings, availabilities)
	printMonth(*year, time.Month(*month), days)
	return nil
}

// monthData fetches the two inputs the calendar derives from.
func (a *app) monthData(ctx context.Context, year int, month time.Month) ([]model.Booking, []model.Availability, error) {
	page, err := a.client.ListBookings(ctx, 1, 500, "")
	if err != nil {
		return nil, nil, fmt.Errorf("list bookings: %w", err)
	}
	availabilities, err := a.client.ListAvailability(ctx, month, year)
	if err != nil {
		return nil, nil, fmt.Errorf("list availability: %w", err)
	}
	return page.Bookings, availabilities, nil
}

var statusMarks = map[calendar.DayStatus]string{
	calendar.StatusBooked:      "B",
	calendar.StatusAvailable:   "A",
	calendar.StatusWeekendOnly: "W",
	calendar.StatusUnavailable: "X",
	calendar.StatusNone:        ".",
}

func printMonth(year int, month time.Month, days []calendar.Day) {
	fmt.Printf("%s %d   (B booked, A available, W weekend-only, X blocked)\n", month, year)
	fmt.Println(" Su  Mo  Tu  We  Th  Fr  Sa")

	col := calendar.LeadingBlanks(year, month)
	fmt.Print(strings.Repeat("    ", col))
	for _, d := range days {
		fmt.Printf("%2d%s ", d.Date.Day(), statusMarks[d.Status])
		col++
		if col%7 == 0 {
			fmt.Println()
		}
	}
	if col%7 != 0 {
		fmt.Println()
	}
}

func (a *app) cmdDay(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: day <date>")
	}
	date, err := parseDate(args[0])
	if err != nil {
		return err
	}

	bookings, availabilities, err := a.monthData(ctx, date.Year(), date.Month())
	if err != nil {
		return err
	}
	status := calendar.DeriveStatus(date, bookings, availabilities)
	fmt.Printf("%s: %s\n", date.Format("2006-01-02"), status)

	if record, err := a.client.GetAvailabilityByDate(ctx, date.Format("2006-01-02")); err == nil && record.ID != "" {
		fmt.Printf("record %s full_day=%v status=%s\n", record.ID, record.IsFullDay, record.Status)
		for _, s := range record.TimeSlots {
			fmt.Printf("  %s-%s %s\n", s.StartTime, s.EndTime, s.Status)
		}
	}

	for _, e := range calendar.EventsFor(date, bookings) {
		fmt.Printf("  %s %s (%s)\n", e.Time, e.Title, e.Location)
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return d, nil
}

// parseSlots turns "09:00-12:00,13:00-17:00" into a slot list.
func parseSlots(spec string) ([]model.TimeSlot, error) {
	if spec == "" {
		return nil, nil
	}
	var slots []model.TimeSlot
	for _, part := range strings.Split(spec, ",") {
		bounds := strings.SplitN(strings.TrimSpace(part), "-", 2)
		if len(bounds) != 2 {
			return nil, fmt.Errorf("invalid slot %q, want HH:MM-HH:MM", part)
		}
		slots = append(slots, model.TimeSlot{
			ID:        uuid.New().String(),
			StartTime: bounds[0],
			EndTime:   bounds[1],
			Status:    model.SlotAvailable,
		})
	}
	return slots, nil
}

func (a *app) cmdSet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	fullDay := fs.Bool("full-day", false, "open the whole day instead of slots")
	slotSpec := fs.String("slots", "", "comma-separated slots, e.g. 09:00-12:00,13:00-17:00")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: set [flags] <date>")
	}

	date, err := parseDate(fs.Arg(0))
	if err != nil {
		return err
	}
	slots, err := parseSlots(*slotSpec)
	if err != nil {
		return err
	}

	if err := a.avail.Set(ctx, availability.SetAvailable{
		On:        date,
		IsFullDay: *fullDay,
		Slots:     slots,
	}); err != nil {
		return err
	}
	fmt.Printf("%s opened\n", date.Format("2006-01-02"))
	return nil
}

func (a *app) cmdBlock(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: block <date>")
	}
	date, err := parseDate(args[0])
	if err != nil {
		return err
	}
	if err := a.avail.Block(ctx, date); err != nil {
		return err
	}
	fmt.Printf("%s blocked\n", date.Format("2006-01-02"))
	return nil
}

func (a *app) cmdWeekend(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("weekend", flag.ContinueOnError)
	year, month := monthFlags(fs)
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	confirm := func(dates []time.Time) bool {
		if *yes {
			return true
		}
		fmt.Printf("open %d weekend days in %s %d? [y/N] ", len(dates), time.Month(*month), *year)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}

	result, err := a.avail.BulkSetWeekend(ctx, *year, time.Month(*month), confirm)
	if err != nil {
		return err
	}
	fmt.Printf("opened %d weekend days\n", result.Affected)
	for _, f := range result.Failures {
		fmt.Printf("  failed %s: %v\n", f.Date.Format("2006-01-02"), f.Err)
	}
	return nil
}

func (a *app) cmdBookings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bookings", flag.ContinueOnError)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 20, "page size")
	status := fs.String("status", "", "filter by status")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.client.ListBookings(ctx, *page, *limit, *status)
	if err != nil {
		return err
	}
	for _, b := range resp.Bookings {
		fmt.Printf("%s  %s %-8s %-10s %-20s %.2f\n",
			b.ID, b.Date.Format("2006-01-02"), b.Time, b.Status, b.CustomerName, b.TotalAmount)
	}
	fmt.Printf("page %d/%d, %d total\n", resp.Page, resp.Pages, resp.Total)
	return nil
}

func (a *app) cmdBookingStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: booking-status <id> <status>")
	}
	id, status := args[0], args[1]
	switch status {
	case model.BookingConfirmed, model.BookingCancelled, model.BookingCompleted:
	default:
		return fmt.Errorf("invalid status %q", status)
	}
	if err := a.client.UpdateBookingStatus(ctx, id, status); err != nil {
		return err
	}
	fmt.Printf("booking %s -> %s\n", id, status)
	return nil
}

func (a *app) cmdExportBookings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export-bookings", flag.ContinueOnError)
	year, month := monthFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	page, err := a.client.ListBookings(ctx, 1, 500, "")
	if err != nil {
		return err
	}
	var monthly []model.Booking
	for _, b := range page.Bookings {
		if b.Date.Year() == *year && b.Date.Month() == time.Month(*month) {
			monthly = append(monthly, b)
		}
	}

	if err := os.MkdirAll(a.cfg.Export.Dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(a.cfg.Export.Dir, export.ReportFilename(*year, time.Month(*month)))

	w := export.NewExcelWriter()
	if err := export.BookingsReport(w, monthly); err != nil {
		return err
	}
	if err := w.SaveToFile(path); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	fmt.Printf("wrote %d bookings to %s\n", len(monthly), path)
	return nil
}

func (a *app) cmdStats(ctx context.Context) error {
	stats, err := a.client.GetBookingStats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("bookings: %d total, %d pending, %d confirmed, %d completed\n",
		stats.TotalBookings, stats.PendingCount, stats.ConfirmedCount, stats.CompletedCount)
	fmt.Printf("earnings: %.2f\n", stats.TotalEarnings)
	return nil
}

func (a *app) cmdBroadcasts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("broadcasts", flag.ContinueOnError)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 20, "page size")
	status := fs.String("status", "", "filter by status (default open)")
	mine := fs.Bool("mine", false, "show requests accepted by me")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var resp *api.BroadcastsPage
	var err error
	if *mine {
		resp, err = a.client.ListAcceptedBroadcasts(ctx, *page, *limit)
	} else {
		resp, err = a.client.ListBroadcasts(ctx, *page, *limit, *status)
	}
	if err != nil {
		return err
	}
	for _, b := range resp.Broadcasts {
		fmt.Printf("%s  %s %-10s %-20s %s\n",
			b.ID, b.Date.Format("2006-01-02"), b.Status, b.CustomerName, b.EventType)
	}
	fmt.Printf("page %d/%d, %d total\n", resp.Page, resp.Pages, resp.Total)
	return nil
}

func (a *app) cmdAccept(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: accept <id>")
	}
	if err := a.client.AcceptBroadcast(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("accepted broadcast %s\n", args[0])
	return nil
}

func (a *app) cmdServices(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("services", flag.ContinueOnError)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 20, "page size")
	category := fs.String("category", "", "filter by category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := a.client.ListServices(ctx, *page, *limit, *category)
	if err != nil {
		return err
	}
	for _, s := range resp.Services {
		fmt.Printf("%s  %-24s %-12s %.2f\n", s.ID, s.Title, s.Category, s.Price)
	}
	fmt.Printf("page %d/%d, %d total\n", resp.Page, resp.Pages, resp.Total)
	return nil
}

func (a *app) cmdReviews(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reviews", flag.ContinueOnError)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 20, "page size")
	rating := fs.Int("rating", 0, "filter by rating (1-5)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	stats, err := a.client.GetReviewStats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%.1f average over %d reviews\n", stats.AverageRating, stats.TotalReviews)

	resp, err := a.client.ListReviews(ctx, *page, *limit, *rating)
	if err != nil {
		return err
	}
	for _, r := range resp.Reviews {
		fmt.Printf("%d/5  %-20s %s  %s\n", r.Rating, r.CustomerName, r.Date.Format("2006-01-02"), r.Comment)
	}
	return nil
}

// watchLoop polls the dashboard stats so the metrics endpoint has fresh
// data while watch mode runs.
func (a *app) watchLoop(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.logger.Info().Msg("eventdesk watch stopped")
			return
		case <-ticker.C:
			stats, err := a.client.GetBookingStats(ctx)
			if err != nil {
				a.logger.Warn().Err(err).Msg("stats poll failed")
				continue
			}
			a.logger.Info().
				Int("total", stats.TotalBookings).
				Int("pending", stats.PendingCount).
				Msg("bookings snapshot")
		}
	}
}
