// Package cli implements the interactive console menus. It collects and
// validates input, then calls the services; no business rules live here.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mfarghaly/bankbook/pkg/money"
	accountsvc "github.com/mfarghaly/bankbook/pkg/service/account"
	bankingsvc "github.com/mfarghaly/bankbook/pkg/service/banking"
	"golang.org/x/term"
)

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	errColor   = color.New(color.FgRed)
	okColor    = color.New(color.FgGreen)
)

// CLI drives the menu loop over the account and banking services.
type CLI struct {
	accounts *accountsvc.Service
	banking  *bankingsvc.Service
	in       *bufio.Reader
	rawIn    io.Reader
	out      io.Writer
	logger   *slog.Logger
}

// New creates a CLI reading from in and writing to out.
func New(accounts *accountsvc.Service, banking *bankingsvc.Service, in io.Reader, out io.Writer, logger *slog.Logger) *CLI {
	return &CLI{
		accounts: accounts,
		banking:  banking,
		in:       bufio.NewReader(in),
		rawIn:    in,
		out:      out,
		logger:   logger,
	}
}

// Run executes the main menu loop until the user exits or input ends.
func (c *CLI) Run(ctx context.Context) error {
	for {
		titleColor.Fprintln(c.out, "\n1. Add User\n2. Show Users\n3. Login\n4. Exit")
		choice, err := c.prompt("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = c.addUser(ctx)
		case "2":
			err = c.showUsers(ctx)
		case "3":
			err = c.login(ctx)
		case "4":
			fmt.Fprintln(c.out, "Exiting system. Goodbye!")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *CLI) addUser(ctx context.Context) error {
	name, err := c.prompt("Enter name: ")
	if err != nil {
		return err
	}
	dob, err := c.prompt("Enter date of birth (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	city, err := c.prompt("Enter city: ")
	if err != nil {
		return err
	}
	password, err := c.promptPassword("Enter password (at least 8 characters): ")
	if err != nil {
		return err
	}
	initial, err := c.promptAmount("Enter initial balance: ")
	if err != nil {
		return err
	}
	contact, err := c.prompt("Enter contact number: ")
	if err != nil {
		return err
	}
	email, err := c.prompt("Enter email: ")
	if err != nil {
		return err
	}
	address, err := c.prompt("Enter address: ")
	if err != nil {
		return err
	}

	a, err := c.accounts.Create(ctx, accountsvc.CreateParams{
		Name:           name,
		DOB:            dob,
		City:           city,
		Password:       password,
		InitialBalance: initial,
		Contact:        contact,
		Email:          email,
		Address:        address,
	})
	if err != nil {
		errColor.Fprintf(c.out, "Error: %v\n", err)
		return nil
	}
	okColor.Fprintf(c.out, "User created successfully! Account Number: %s\n", a.Number)
	return nil
}

func (c *CLI) showUsers(ctx context.Context) error {
	accounts, err := c.accounts.List(ctx)
	if err != nil {
		errColor.Fprintf(c.out, "Error: %v\n", err)
		return nil
	}
	for _, a := range accounts {
		fmt.Fprintf(c.out, "\nName: %s\nAccount Number: %s\nBalance: %s\nEmail: %s\nActive: %t\n",
			a.Name, a.Number, a.Balance, a.Email, a.Active)
	}
	return nil
}

func (c *CLI) login(ctx context.Context) error {
	number, err := c.prompt("Enter account number: ")
	if err != nil {
		return err
	}
	password, err := c.promptPassword("Enter password: ")
	if err != nil {
		return err
	}
	a, err := c.accounts.Authenticate(ctx, number, password)
	if err != nil {
		errColor.Fprintln(c.out, "Invalid credentials or inactive account.")
		return nil
	}
	okColor.Fprintln(c.out, "Login successful!")
	return c.dashboard(ctx, a.Number)
}

func (c *CLI) dashboard(ctx context.Context, number string) error {
	for {
		titleColor.Fprintln(c.out, "\n1. Show Balance\n2. Show Transactions\n3. Credit\n4. Debit\n5. Transfer\n6. Change Password\n7. Logout")
		choice, err := c.prompt("Enter choice: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			balance, err := c.banking.Balance(ctx, number)
			if err != nil {
				errColor.Fprintf(c.out, "Error: %v\n", err)
				continue
			}
			fmt.Fprintf(c.out, "Current Balance: %s\n", balance)
		case "2":
			entries, err := c.banking.History(ctx, number)
			if err != nil {
				errColor.Fprintf(c.out, "Error: %v\n", err)
				continue
			}
			for _, e := range entries {
				fmt.Fprintf(c.out, "Type: %s, Amount: %s, Date: %s\n",
					e.Type, e.Amount, e.CreatedAt.Format("2006-01-02 15:04:05"))
			}
		case "3":
			amount, err := c.promptAmount("Enter amount to credit: ")
			if err != nil {
				return err
			}
			if err := c.banking.Credit(ctx, number, amount); err != nil {
				errColor.Fprintf(c.out, "Error: %v\n", err)
				continue
			}
			okColor.Fprintln(c.out, "Amount credited.")
		case "4":
			amount, err := c.promptAmount("Enter amount to debit: ")
			if err != nil {
				return err
			}
			if err := c.banking.Debit(ctx, number, amount); err != nil {
				errColor.Fprintf(c.out, "Error: %v\n", err)
				continue
			}
			okColor.Fprintln(c.out, "Amount debited.")
		case "5":
			target, err := c.prompt("Enter target account: ")
			if err != nil {
				return err
			}
			amount, err := c.promptAmount("Enter amount to transfer: ")
			if err != nil {
				return err
			}
			if err := c.banking.Transfer(ctx, number, target, amount); err != nil {
				errColor.Fprintf(c.out, "Error: %v\n", err)
				continue
			}
			okColor.Fprintln(c.out, "Transfer complete.")
		case "6":
			newPassword, err := c.promptPassword("Enter new password: ")
			if err != nil {
				return err
			}
			if err := c.banking.ChangePassword(ctx, number, newPassword); err != nil {
				errColor.Fprintf(c.out, "Error: %v\n", err)
				continue
			}
			okColor.Fprintln(c.out, "Password updated.")
		case "7":
			fmt.Fprintln(c.out, "Logged out.")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
	}
}

func (c *CLI) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads without echo when stdin is a terminal.
func (c *CLI) promptPassword(label string) (string, error) {
	if f, ok := c.rawIn.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(c.out, label)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(c.out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return c.prompt(label)
}

// promptAmount re-prompts until the input parses as a valid amount.
func (c *CLI) promptAmount(label string) (money.Money, error) {
	for {
		s, err := c.prompt(label)
		if err != nil {
			return money.Zero, err
		}
		m, err := money.Parse(s)
		if err != nil {
			errColor.Fprintln(c.out, "Invalid amount!")
			continue
		}
		return m, nil
	}
}
