package main

import (
	"context"

	"github.com/pkg/errors"

	"github.com/pgkhata/pgkhata/core/user"
)

// createOwner registers a new owner; the password policy applies but the admin password is not required.
func (cli *commandLine) createOwner(email, name, pwd string) error {
	ctx := context.Background()
	data := user.NewUser{
		Email:         email,
		FullName:      name,
		Password:      pwd,
		AdminPassword: cli.conf.AdminPassword,
	}
	if err := data.Validate(ctx, cli.validate, cli.usrSvc); err != nil {
		return err
	}

	usr, err := cli.usrSvc.Create(ctx, data)
	if err != nil {
		return errors.Wrap(err, "creating owner")
	}
	cli.logger.Info("owner created: " + usr.Email)
	return nil
}
