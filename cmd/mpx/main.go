// Command mpx is the courier client: it quotes and books parcels against
// the parcel-storage API, looks up tracking history and resolves the
// caller's dashboard role.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"mirpur-express/internal/auth"
	"mirpur-express/internal/config"
	"mirpur-express/internal/models"
	"mirpur-express/internal/modules/parcels"
	"mirpur-express/internal/modules/pricing"
	"mirpur-express/internal/modules/roles"
	"mirpur-express/internal/modules/servicecenters"
	"mirpur-express/internal/modules/tracking"
	"mirpur-express/pkg/apiclient"

	"github.com/rs/zerolog"
)

const usage = `usage: mpx <command> [flags]

commands:
  quote    price a parcel without booking it
  send     book a parcel
  parcels  list my parcels
  track    show tracking history for a tracking id
  role     show my dashboard role and capabilities
  regions  list coverage regions and districts
`

type app struct {
	cfg     *config.Config
	session *auth.Session
	client  *apiclient.Client
	parcels *parcels.Service
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "mpx:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("missing command")
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	session, err := auth.NewSession(cfg.AccessToken)
	if err != nil {
		return fmt.Errorf("bad ACCESS_TOKEN: %w", err)
	}
	client := apiclient.New(cfg.APIBaseURL, session)
	client.OnUnauthorized(func() {
		session.Logout()
		logger.Warn().Msg("session rejected by the API, logged out")
	})

	a := &app{
		cfg:     cfg,
		session: session,
		client:  client,
		parcels: parcels.NewService(client, session, logger),
	}

	ctx := context.Background()
	switch args[0] {
	case "quote":
		return a.quote(args[1:])
	case "send":
		return a.send(ctx, args[1:])
	case "parcels":
		return a.listParcels(ctx)
	case "track":
		return a.track(ctx, args[1:])
	case "role":
		return a.role(ctx)
	case "regions":
		return a.regions()
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// parcelFlags binds the booking form fields onto a flag set.
func parcelFlags(fs *flag.FlagSet, req *models.ParcelRequest) {
	fs.StringVar(&req.ParcelType, "type", models.ParcelTypeDocument, "parcel type: Document or Non-Document")
	fs.StringVar(&req.ParcelName, "name", "", "what is being sent")
	fs.Float64Var(&req.ParcelWeightKg, "weight", 0, "weight in kg, required for Non-Document")
	fs.StringVar(&req.SenderName, "sender-name", "", "sender name")
	fs.StringVar(&req.SenderContact, "sender-contact", "", "sender phone")
	fs.StringVar(&req.SenderRegion, "sender-region", "", "sender region")
	fs.StringVar(&req.SenderDistrict, "from", "", "sender district")
	fs.StringVar(&req.SenderArea, "sender-area", "", "sender covered area")
	fs.StringVar(&req.SenderAddress, "sender-address", "", "pickup address")
	fs.StringVar(&req.PickupInstruction, "pickup-note", "", "pickup instruction")
	fs.StringVar(&req.ReceiverName, "receiver-name", "", "receiver name")
	fs.StringVar(&req.ReceiverContact, "receiver-contact", "", "receiver phone")
	fs.StringVar(&req.ReceiverRegion, "receiver-region", "", "receiver region")
	fs.StringVar(&req.ReceiverDistrict, "to", "", "receiver district")
	fs.StringVar(&req.ReceiverArea, "receiver-area", "", "receiver covered area")
	fs.StringVar(&req.ReceiverAddress, "receiver-address", "", "delivery address")
	fs.StringVar(&req.DeliveryInstruction, "delivery-note", "", "delivery instruction")
}

func (a *app) quote(args []string) error {
	fs := flag.NewFlagSet("quote", flag.ContinueOnError)
	var req models.ParcelRequest
	fs.StringVar(&req.ParcelType, "type", models.ParcelTypeDocument, "parcel type: Document or Non-Document")
	fs.Float64Var(&req.ParcelWeightKg, "weight", 0, "weight in kg, required for Non-Document")
	fs.StringVar(&req.SenderDistrict, "from", "", "sender district")
	fs.StringVar(&req.ReceiverDistrict, "to", "", "receiver district")
	if err := fs.Parse(args); err != nil {
		return err
	}

	breakdown, err := a.parcels.Quote(req)
	if err != nil {
		return err
	}
	printBreakdown(breakdown)
	return nil
}

func (a *app) send(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	var req models.ParcelRequest
	parcelFlags(fs, &req)
	if err := fs.Parse(args); err != nil {
		return err
	}

	receipt, err := a.parcels.Submit(ctx, req)
	if err != nil {
		return err
	}

	fmt.Println("Booking successful!")
	fmt.Printf("Tracking ID: %s\n", receipt.TrackingID)
	printBreakdown(receipt.Charge)
	return nil
}

func (a *app) listParcels(ctx context.Context) error {
	mine, err := a.parcels.ListMine(ctx)
	if err != nil {
		return err
	}
	if len(mine) == 0 {
		fmt.Println("No parcels yet.")
		return nil
	}
	for _, p := range mine {
		fmt.Printf("%s  %-12s  %-18s  ৳%.2f  %s -> %s\n",
			p.TrackingID, p.PaymentStatus, p.DeliveryStatus, p.DeliveryCharge,
			p.SenderDistrict, p.ReceiverDistrict)
	}
	return nil
}

func (a *app) track(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("track", flag.ContinueOnError)
	id := fs.String("id", "", "tracking id (MPX-YYYYMMDD-XXXXXX)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" && fs.NArg() > 0 {
		*id = fs.Arg(0)
	}

	trk := tracking.NewService(a.client)
	events, err := trk.History(ctx, *id)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("No tracking history yet.")
		return nil
	}
	for _, ev := range events {
		fmt.Printf("%s  %-20s  %s\n", ev.Timestamp.Format(time.RFC3339), ev.Status, ev.Details)
	}
	return nil
}

func (a *app) role(ctx context.Context) error {
	if !a.session.LoggedIn() {
		return models.ErrInvalidToken
	}
	res := roles.NewFetcher(a.client).Resolve(ctx, a.session.Email())
	switch res.Status {
	case roles.StatusKnown:
		fmt.Printf("Role: %s\n", res.Role)
		var caps []string
		for c, ok := range roles.Capabilities(res.Role) {
			if ok {
				caps = append(caps, string(c))
			}
		}
		sort.Strings(caps)
		fmt.Printf("Capabilities: %s\n", strings.Join(caps, ", "))
	default:
		fmt.Println("Role: unknown (fetch failed); no dashboard capabilities granted")
	}
	return nil
}

func (a *app) regions() error {
	catalog, err := servicecenters.Load(a.cfg.ServiceCenterFile)
	if err != nil {
		return err
	}
	for _, region := range catalog.Regions() {
		fmt.Printf("%s: %s\n", region, strings.Join(catalog.Districts(region), ", "))
	}
	return nil
}

// printBreakdown renders the charge table. Amounts are shown with two
// decimals; fractional weights produce fractional extras.
func printBreakdown(b pricing.Breakdown) {
	delivery := "Outside City/District"
	if b.SameDistrict {
		delivery = "Within City"
	}
	fmt.Printf("Delivery:     %s\n", delivery)
	fmt.Printf("Base Price:   ৳%.2f\n", b.Base)
	fmt.Printf("Extra Charge: ৳%.2f\n", b.Extra)
	fmt.Printf("Total:        ৳%.2f\n", b.Total)
}
