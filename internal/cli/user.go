package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type LoginCmd struct {
	Name string `arg:"" help:"Display name to log in as (created on first use)."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	name, err := ValidateUserName(c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Store.AddUser(name); err != nil {
		return err
	}
	if err := ctx.Store.SetActiveUser(name); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", name)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Store.SetActiveUser(""); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

type UserCmd struct {
	List   UserListCmd   `cmd:"" help:"List known users."`
	Delete UserDeleteCmd `cmd:"" help:"Delete a user and all their records."`
}

type UserListCmd struct{}

func (c *UserListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	users, err := ctx.Store.GetUsers()
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	active, _ := ctx.Store.GetActiveUser()
	for _, u := range users {
		marker := ""
		if u == active {
			marker = " (active)"
		}
		fmt.Printf("%s%s\n", u, marker)
	}
	return nil
}

type UserDeleteCmd struct {
	Name string `arg:"" help:"User to delete."`
	Yes  bool   `help:"Skip the confirmation prompt."`
}

func (c *UserDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	users, err := ctx.Store.GetUsers()
	if err != nil {
		return err
	}
	found := false
	for _, u := range users {
		if u == c.Name {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("user %q not found", c.Name)
	}

	// Deleting a user wipes their entire record set; always confirm unless
	// the caller opted out explicitly.
	if !c.Yes {
		fmt.Printf("Delete user %q and all their practice records? This cannot be undone. [y/N] ", c.Name)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.Store.DeleteUser(c.Name); err != nil {
		return err
	}
	fmt.Printf("Deleted user %s\n", c.Name)
	return nil
}
