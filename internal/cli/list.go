package cli

import (
	"bufio"
	"strings"

	"github.com/goccy/go-json"

	"github.com/julianstephens/happyhour/internal/filter"
	"github.com/julianstephens/happyhour/internal/prices"
	"github.com/julianstephens/happyhour/internal/render"
)

type ListCmd struct {
	FilterFlags `embed:""`

	Cards bool `help:"Show compact cards instead of a table."`
	Raw   bool `help:"Show drink and food text without added price markers."`
	JSON  bool `help:"Print rows as JSON." name:"json"`
}

func (c *ListCmd) Run(ctx *Context) error {
	ds, err := ctx.Dataset()
	if err != nil {
		return err
	}

	favs := ctx.Favorites()
	criteria, err := c.Criteria(ctx, favs)
	if err != nil {
		return err
	}

	promos := filter.Apply(ds, criteria)
	filter.Sort(promos)
	opts := render.Options{Raw: c.Raw, Favorites: favs}

	if c.JSON {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(render.Rows(promos, opts))
	}
	return render.Write(ctx.Out, promos, opts, c.Cards || ctx.Config.Defaults.Cards)
}

type ZonesCmd struct{}

func (c *ZonesCmd) Run(ctx *Context) error {
	ds, err := ctx.Dataset()
	if err != nil {
		return err
	}

	zones := filter.Zones(ds)
	if len(zones) == 0 {
		ctx.println("No zones found.")
	}
	for _, z := range zones {
		ctx.println(z)
	}

	if lo, hi, ok := filter.PriceRange(ds); ok {
		ctx.printf("\nDrink prices: %s – %s\n", prices.FormatPrice(lo), prices.FormatPrice(hi))
	}
	return nil
}

type AnnotateCmd struct {
	Text []string `arg:"" optional:"" help:"Text to annotate. Reads lines from stdin when omitted."`
}

func (c *AnnotateCmd) Run(ctx *Context) error {
	if len(c.Text) > 0 {
		ctx.println(prices.AnnotatePrices(strings.Join(c.Text, " ")))
		return nil
	}

	scanner := bufio.NewScanner(ctx.In)
	for scanner.Scan() {
		ctx.println(prices.AnnotatePrices(scanner.Text()))
	}
	return scanner.Err()
}
