// Command reserve books a table against a running site from the terminal.
// It validates the booking the same way the reservation page does and always
// prints the call and WhatsApp links, so the guest has a way through even
// when the site is down.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"latina/config"
	"latina/infras/otel"
	"latina/internal/catalog"
	"latina/internal/domains/reservation/client"
	"latina/internal/domains/reservation/form"
	"latina/shared/locale"
	"latina/shared/logger"
)

type options struct {
	url          string
	locale       string
	name         string
	phone        string
	date         string
	time         string
	guests       int
	observations string
	timeout      time.Duration
}

func parse(args []string, output io.Writer) (options, error) {
	opts := options{}

	flags := flag.NewFlagSet("reserve", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&opts.url, "url", "http://localhost:8080", "site base URL")
	flags.StringVar(&opts.locale, "locale", locale.Default.String(), "language of the messages (pt, en, fr)")
	flags.StringVar(&opts.name, "name", "", "guest name")
	flags.StringVar(&opts.phone, "phone", "", "contact phone")
	flags.StringVar(&opts.date, "date", "", "day of the booking, YYYY-MM-DD")
	flags.StringVar(&opts.time, "time", "", "slot, HH:MM")
	flags.IntVar(&opts.guests, "guests", form.DefaultGuests, "number of guests")
	flags.StringVar(&opts.observations, "notes", "", "special requests")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "how long to wait for the site")

	if err := flags.Parse(args); err != nil {
		return opts, err
	}

	if _, ok := locale.Parse(opts.locale); !ok {
		return opts, fmt.Errorf("unsupported locale %q", opts.locale)
	}

	return opts, nil
}

func run(ctx context.Context, opts options, submitter form.Submitter, out io.Writer) error {
	loc, _ := locale.Parse(opts.locale)
	cfg := config.Get()

	controller := form.New(submitter, catalog.MustLoad(loc),
		form.WithContact(cfg.App.Contact.Phone, cfg.App.Contact.WhatsApp),
	)
	defer controller.Close()

	fields := map[form.Field]string{
		form.FieldName:         opts.name,
		form.FieldPhone:        opts.phone,
		form.FieldDate:         opts.date,
		form.FieldTime:         opts.time,
		form.FieldGuests:       strconv.Itoa(opts.guests),
		form.FieldObservations: opts.observations,
	}

	for _, field := range form.Fields() {
		if err := controller.UpdateField(field, fields[field]); err != nil {
			return fmt.Errorf("failed to set %s: %w", field, err)
		}
	}

	if opts.time != "" && !slices.Contains(controller.Slots(), opts.time) {
		fmt.Fprintf(out, "note: %s is not one of the usual slots (%v)\n", opts.time, controller.Slots())
	}

	ack, err := controller.Submit(ctx)

	defer func() {
		fmt.Fprintf(out, "\ncall:     %s\nwhatsapp: %s\n", controller.CallLink(), controller.WhatsAppLink())
	}()

	var invalid form.ValidationErrors

	switch {
	case err == nil:
		messages := catalog.MustLoad(loc).Messages.Reservation.Success
		fmt.Fprintf(out, "%s\n%s\n%s, %s %s, %d\n", messages.Title, messages.Message, ack.Name, ack.Date, ack.Time, ack.Guests)

		return nil
	case errors.As(err, &invalid):
		for _, field := range form.Fields() {
			if fieldErr, ok := invalid[field]; ok {
				fmt.Fprintf(out, "%s: %s\n", field, fieldErr.Message)
			}
		}

		return err
	default:
		messages := catalog.MustLoad(loc).Messages.Reservation.Error
		fmt.Fprintf(out, "%s\n%s\n", messages.Title, messages.Message)

		return err
	}
}

func main() {
	logger.InitLogger()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	opts, err := parse(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}

		log.Fatal().Err(err).Msg("Invalid arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loc, _ := locale.Parse(opts.locale)
	tracer := otel.New(config.Get())
	defer tracer.Shutdown(context.Background()) //nolint:errcheck

	submitter := client.New(opts.url, opts.timeout, loc, tracer)

	if err := run(ctx, opts, submitter, os.Stdout); err != nil {
		stop()
		os.Exit(1) //nolint:gocritic
	}
}
