package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"syscall"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/eduflowhq/eduflow/core/session"
	"github.com/eduflowhq/eduflow/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	store  *session.Store
	seed   user.Directory
	stdout io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out(), "Usage:")
	fmt.Fprintln(cli.out(), "  adduser -name NAME -email EMAIL [-role ROLE] - register a user. The password will be prompted next.")
	fmt.Fprintln(cli.out(), "  listusers - list all accounts, seeded and registered")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ExitOnError)
	addUserName := addUserCmd.String("name", "", "The user's full name.")
	addUserEmail := addUserCmd.String("email", "", "The user's email.")
	addUserRole := addUserCmd.String("role", user.RoleStudent, "The user's role.")

	listUsersCmd := flag.NewFlagSet("listusers", flag.ExitOnError)

	switch args[1] {
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserName == "" || *addUserEmail == "" {
			addUserCmd.Usage()
			return errHelp
		}
		if !user.IsValidRole(*addUserRole) {
			addUserCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out(), "Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Fprintln(cli.out())
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(*addUserName, *addUserEmail, string(pwd), *addUserRole)
	case "listusers":
		if err := listUsersCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.listUsers()
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) addUser(name, email, pwd, role string) error {
	if err := user.ValidatePassword(pwd, name, email); err != nil {
		return err
	}
	if err := cli.store.Register(name, email, pwd, role); err != nil {
		return err
	}
	// registering signs the new account in; an admin shell session is not one
	cli.store.Logout()
	fmt.Fprintf(cli.out(), "user %q registered\n", email)
	return nil
}

func (cli *commandLine) listUsers() error {
	seeded, err := cli.seed.QueryAllUsers()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cli.out(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "SOURCE\tID\tEMAIL\tNAME\tROLE")
	for _, usr := range seeded {
		fmt.Fprintf(w, "seed\t%s\t%s\t%s\t%s\n", usr.ID, usr.Email, usr.Name, usr.Role)
	}
	for _, usr := range cli.store.RegisteredUsers() {
		fmt.Fprintf(w, "registered\t%s\t%s\t%s\t%s\n", usr.ID, usr.Email, usr.Name, usr.Role)
	}
	return w.Flush()
}

func (cli *commandLine) out() io.Writer {
	if cli.stdout != nil {
		return cli.stdout
	}
	return os.Stdout
}
