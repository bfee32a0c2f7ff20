package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"droscher.com/BuzzLog/pkg/model"
	"droscher.com/BuzzLog/pkg/repository"
	"droscher.com/BuzzLog/pkg/server/grpc"
	api "droscher.com/BuzzLog/pkg/server/grpc/api/v1"
	"droscher.com/BuzzLog/pkg/stats"
)

var ErrNotConfirmed = errors.New("refusing to delete every drink without --yes")

type AddCmd struct {
	ConfigFile  string  `default:".BuzzLog.toml" help:"Path to config file" short:"c"`
	Name        string  `arg:"" help:"Name of the drink"`
	Date        string  `help:"Date of the drink as YYYY-MM-DD, today if not given"`
	AlcoholType string  `default:"Beer" enum:"Beer,Wine,Liquor" help:"Beer, Wine or Liquor" short:"a"`
	Type        string  `help:"Type, such as IPA or Merlot, defaults to the latest entry for this drink"`
	Subtype     string  `help:"Subtype, such as Hazy, defaults to the latest entry for this drink"`
	Producer    string  `help:"Brewery, winery or distillery, defaults to the latest entry for this drink" short:"p"`
	ABV         float64 `help:"Alcohol by volume, in percent, defaults to the latest entry for this drink" name:"abv"`
	IBU         float64 `default:"-1" help:"Bitterness, -1 when not applicable or to reuse the latest entry" name:"ibu"`
	Size        float64 `help:"Serving size in the configured units" short:"s"`
	Rating      int     `help:"Rating" short:"r"`
	Notes       string  `help:"Notes, defaults to the latest notes for this drink"`
	Vintage     int     `default:"-999" help:"Vintage year, -999 when not applicable"`
}

func (a *AddCmd) Run(ctx *Context) error {
	buzz, err := openApp(a.ConfigFile, ctx)
	if err != nil {
		return err
	}
	defer buzz.close()

	drink := model.Drink{
		Date:        a.Date,
		Name:        a.Name,
		AlcoholType: model.AlcoholType(a.AlcoholType),
		Type:        a.Type,
		Subtype:     a.Subtype,
		Producer:    a.Producer,
		ABV:         a.ABV,
		IBU:         a.IBU,
		Size:        a.Size,
		Rating:      a.Rating,
		Notes:       a.Notes,
		Vintage:     a.Vintage,
	}

	if len(drink.Date) == 0 {
		drink.Date = model.FormatDate(time.Now())
	}

	latest, err := latestEntry(buzz.repo, drink)
	if err != nil {
		buzz.logger.Warn("could not load previous entry", zap.String("name", drink.Name), zap.Error(err))
	} else if latest != nil {
		fillFromLatest(&drink, latest)
	}

	if len(drink.Notes) == 0 {
		drink.Notes, err = buzz.repo.GetLatestNotes(context.Background(), drink.Name, drink.AlcoholType)
		if err != nil {
			buzz.logger.Warn("could not load previous notes", zap.String("name", drink.Name), zap.Error(err))
		}
	}

	if err = drink.Validate(); err != nil {
		return err
	}

	added, err := buzz.repo.AddDrink(context.Background(), drink)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(ctx.Stdout, "Added %s %q on %s (id %d)\n", added.AlcoholType, added.Name, added.Date, added.ID)

	return err
}

// latestEntry finds the most recent entry of the same drink, from the same producer when
// one was given. It returns nil without an error for a drink never logged before.
func latestEntry(repo repository.DrinkRepository, drink model.Drink) (*model.Drink, error) {
	var (
		latest *model.Drink
		err    error
	)

	if len(drink.Producer) > 0 {
		latest, err = repo.GetDrinkByNameAndProducer(context.Background(), drink.AlcoholType, drink.Name, drink.Producer)
	} else {
		latest, err = repo.GetDrinkByName(context.Background(), drink.AlcoholType, drink.Name)
	}

	if errors.Is(err, repository.ErrDrinkNotFound) {
		return nil, nil //nolint:nilnil // a drink never logged before has no latest entry
	}

	return latest, err
}

func fillFromLatest(drink *model.Drink, latest *model.Drink) {
	if len(drink.Type) == 0 {
		drink.Type = latest.Type
	}

	if len(drink.Subtype) == 0 {
		drink.Subtype = latest.Subtype
	}

	if len(drink.Producer) == 0 {
		drink.Producer = latest.Producer
	}

	if drink.ABV == 0 {
		drink.ABV = latest.ABV
	}

	if !drink.HasIBU() {
		drink.IBU = latest.IBU
	}
}

type UpdateCmd struct {
	ConfigFile  string   `default:".BuzzLog.toml" help:"Path to config file" short:"c"`
	ID          uint64   `arg:"" help:"Id of the drink"`
	Date        *string  `help:"Date as YYYY-MM-DD"`
	Name        *string  `help:"Name"`
	AlcoholType *string  `help:"Beer, Wine or Liquor" short:"a"`
	Type        *string  `help:"Type"`
	Subtype     *string  `help:"Subtype"`
	Producer    *string  `help:"Producer" short:"p"`
	ABV         *float64 `help:"Alcohol by volume" name:"abv"`
	IBU         *float64 `help:"Bitterness" name:"ibu"`
	Size        *float64 `help:"Serving size" short:"s"`
	Rating      *int32   `help:"Rating" short:"r"`
	Notes       *string  `help:"Notes"`
	Vintage     *int32   `help:"Vintage year"`
}

func (u *UpdateCmd) Run(ctx *Context) error {
	buzz, err := openApp(u.ConfigFile, ctx)
	if err != nil {
		return err
	}
	defer buzz.close()

	drink, err := buzz.repo.GetDrink(context.Background(), uint(u.ID))
	if err != nil {
		return err
	}

	grpc.ApplyUpdate(drink, &api.UpdateDrinkRequest{
		Date:        u.Date,
		Name:        u.Name,
		AlcoholType: u.AlcoholType,
		Type:        u.Type,
		Subtype:     u.Subtype,
		Producer:    u.Producer,
		Abv:         u.ABV,
		Ibu:         u.IBU,
		Size:        u.Size,
		Rating:      u.Rating,
		Notes:       u.Notes,
		Vintage:     u.Vintage,
	})

	if err = drink.Validate(); err != nil {
		return err
	}

	if _, err = buzz.repo.UpdateDrink(context.Background(), drink); err != nil {
		return err
	}

	_, err = fmt.Fprintf(ctx.Stdout, "Updated %q (id %d)\n", drink.Name, drink.ID)

	return err
}

type DeleteCmd struct {
	ConfigFile string `default:".BuzzLog.toml" help:"Path to config file" short:"c"`
	ID         uint64 `arg:""                  help:"Id of the drink"`
}

func (d *DeleteCmd) Run(ctx *Context) error {
	buzz, err := openApp(d.ConfigFile, ctx)
	if err != nil {
		return err
	}
	defer buzz.close()

	if err = buzz.repo.DeleteDrink(context.Background(), uint(d.ID)); err != nil {
		return err
	}

	_, err = fmt.Fprintf(ctx.Stdout, "Deleted drink %d\n", d.ID)

	return err
}

type ListCmd struct {
	ConfigFile string `default:".BuzzLog.toml" help:"Path to config file" short:"c"`
	Filter     string `help:"Filter to apply: Name, Type, Subtype, Producer, Alcohol Type, After Date, Rating or Name & Producer" short:"f"`
	Value      string `help:"Value for the filter, Name & Producer takes \"<name> -- (<producer>)\"" short:"v"`
}

func (l *ListCmd) Run(ctx *Context) error {
	buzz, err := openApp(l.ConfigFile, ctx)
	if err != nil {
		return err
	}
	defer buzz.close()

	var drinks []*model.Drink

	if len(l.Filter) == 0 {
		drinks, err = buzz.repo.ListDrinks(context.Background())
	} else {
		var filter repository.Filter

		filter, err = repository.ParseFilter(repository.FilterKind(l.Filter), l.Value)
		if err != nil {
			return err
		}

		drinks, err = buzz.repo.Filter(context.Background(), filter)
	}

	if err != nil {
		return err
	}

	return writeDrinks(ctx.Stdout, drinks)
}

func writeDrinks(out io.Writer, drinks []*model.Drink) error {
	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0) //nolint:mnd // column padding

	fmt.Fprintln(writer, "ID\tDATE\tNAME\tPRODUCER\tTYPE\tSUBTYPE\tABV\tIBU\tSIZE\tRATING")

	for _, drink := range drinks {
		ibu := "N/A"
		if drink.HasIBU() {
			ibu = stats.DoubleToString(drink.IBU)
		}

		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			drink.ID, drink.Date, drink.Name, drink.Producer, drink.Type, drink.Subtype,
			stats.DoubleToString(drink.ABV), ibu, stats.DoubleToString(drink.Size), strconv.Itoa(drink.Rating))
	}

	return writer.Flush()
}

type NotesCmd struct {
	ConfigFile  string `default:".BuzzLog.toml" help:"Path to config file" short:"c"`
	Name        string `arg:""                  help:"Name of the drink"`
	AlcoholType string `default:"Beer"          enum:"Beer,Wine,Liquor" help:"Beer, Wine or Liquor" short:"a"`
}

func (n *NotesCmd) Run(ctx *Context) error {
	buzz, err := openApp(n.ConfigFile, ctx)
	if err != nil {
		return err
	}
	defer buzz.close()

	notes, err := buzz.repo.GetLatestNotes(context.Background(), n.Name, model.AlcoholType(n.AlcoholType))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.Stdout, notes)

	return err
}

type TruncateCmd struct {
	ConfigFile string `default:".BuzzLog.toml" help:"Path to config file" short:"c"`
	Yes        bool   `help:"Confirm deleting every drink"`
}

func (t *TruncateCmd) Run(ctx *Context) error {
	if !t.Yes {
		return ErrNotConfirmed
	}

	buzz, err := openApp(t.ConfigFile, ctx)
	if err != nil {
		return err
	}
	defer buzz.close()

	if err = buzz.repo.Truncate(context.Background()); err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.Stdout, "Deleted every drink")

	return err
}
