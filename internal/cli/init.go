package cli

import (
	"fmt"
	"os"
	"time"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if _, err := os.Stat(ctx.ConfigPath); os.IsNotExist(err) {
		if err := ctx.Config.Write(ctx.ConfigPath); err != nil {
			return err
		}
		fmt.Printf("Wrote config: %s\n", ctx.ConfigPath)
	} else {
		fmt.Printf("Config already exists: %s\n", ctx.ConfigPath)
	}

	if err := ctx.Store.Init(time.Now()); err != nil {
		return err
	}
	fmt.Printf("Initialized data file: %s\n", ctx.Store.Path())

	if !ctx.Config.SyncConfigured() {
		fmt.Println("Remote sync is off. Add client credentials to the config file to enable it.")
	}
	return nil
}
