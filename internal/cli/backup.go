package cli

import (
	"fmt"

	"github.com/julianstephens/zenone/internal/backup"
)

type BackupCmd struct {
	Create BackupCreateCmd `cmd:"" help:"Create a backup of the storage file."`
	List   BackupListCmd   `cmd:"" help:"List available backups."`
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	// Load then close so any pending state is flushed before the file copy.
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Store.Close(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	for _, b := range backups {
		fmt.Printf("%s  %8d bytes  %s\n", b.Timestamp.Format("2006-01-02 15:04:05"), b.Size, b.Path)
	}
	return nil
}
