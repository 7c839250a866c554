package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/zenone/internal/keyring"
	"github.com/julianstephens/zenone/internal/models"
)

type QuoteCmd struct {
	Refresh bool `help:"Force a refresh regardless of cache age."`
}

func (c *QuoteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var q models.QuoteData
	if c.Refresh {
		q = ctx.Quotes.Refresh(context.Background())
	} else {
		q = ctx.Quotes.Get(context.Background())
	}

	fmt.Println(q.Text)
	if q.Source != "" {
		fmt.Printf("  — %s\n", q.Source)
	}
	return nil
}

type KeyCmd struct {
	Set   KeySetCmd   `cmd:"" help:"Store the quote provider API key in the OS keyring."`
	Show  KeyShowCmd  `cmd:"" help:"Show whether an API key is stored."`
	Clear KeyClearCmd `cmd:"" help:"Remove the API key from the OS keyring."`
}

type KeySetCmd struct {
	Key string `arg:"" help:"API key for the quote provider."`
}

func (c *KeySetCmd) Run(ctx *Context) error {
	if err := keyring.SetAPIKey(c.Key); err != nil {
		return err
	}
	fmt.Println("API key stored.")
	return nil
}

type KeyShowCmd struct{}

func (c *KeyShowCmd) Run(ctx *Context) error {
	if _, err := keyring.GetAPIKey(); err != nil {
		fmt.Println("No API key stored.")
		return nil
	}
	fmt.Println("An API key is stored.")
	return nil
}

type KeyClearCmd struct{}

func (c *KeyClearCmd) Run(ctx *Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		return err
	}
	fmt.Println("API key removed.")
	return nil
}
