package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"syscall"

	"github.com/go-playground/validator/v10"
	"golang.org/x/term"

	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/property"
	"github.com/pgkhata/pgkhata/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf     *core.Config
	logger   core.Logger
	db       *sql.DB
	usrSvc   user.Service
	propSvc  property.Service
	validate *validator.Validate
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  createowner -email EMAIL [-name NAME] - create a PG owner account")
	fmt.Println("  resetpassword -email EMAIL - reset an owner's password")
	fmt.Println("  migrate COMMAND [ARGS...] - run a goose migration command (up, down, status, ...)")
	fmt.Println("  seed -email EMAIL - create a sample PG for the owner")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	createOwnerCmd := flag.NewFlagSet("createowner", flag.ContinueOnError)
	createOwnerEmail := createOwnerCmd.String("email", "", "The owner's email. The password will be prompted next.")
	createOwnerName := createOwnerCmd.String("name", "", "The owner's full name.")

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ContinueOnError)
	resetPasswordEmail := resetPasswordCmd.String("email", "", "The owner's email. The password will be prompted next.")

	seedCmd := flag.NewFlagSet("seed", flag.ContinueOnError)
	seedEmail := seedCmd.String("email", "", "The email of the owner of the sample PG.")

	switch args[1] {
	case "createowner":
		if err := createOwnerCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *createOwnerEmail == "" {
			createOwnerCmd.Usage()
			return errHelp
		}
		pwd, err := promptPassword()
		if err != nil {
			return err
		}
		if pwd == "" {
			createOwnerCmd.Usage()
			return errHelp
		}
		return cli.createOwner(*createOwnerEmail, *createOwnerName, pwd)
	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordEmail == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		pwd, err := promptPassword()
		if err != nil {
			return err
		}
		if pwd == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		return cli.resetPassword(*resetPasswordEmail, pwd)
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "seed":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *seedEmail == "" {
			seedCmd.Usage()
			return errHelp
		}
		return cli.seed(*seedEmail)
	default:
		cli.printUsage()
		return errHelp
	}
}

func promptPassword() (string, error) {
	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}
