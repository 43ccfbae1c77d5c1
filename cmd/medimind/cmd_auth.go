package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Shell-level mirror of the login surface. Sessions created here are
// picked up by the interactive UI and vice versa.

var (
	authName     string
	authEmail    string
	authPassword string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new account and log it in",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, accounts, _, _, log, err := openEnv()
		if err != nil {
			return err
		}
		defer st.Close()
		defer log.Sync()

		u, err := accounts.Signup(authName, authEmail, authPassword)
		if err != nil {
			return err
		}
		fmt.Printf("Welcome, %s! You are now logged in.\n", u.Name)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with an existing account",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, accounts, _, _, log, err := openEnv()
		if err != nil {
			return err
		}
		defer st.Close()
		defer log.Sync()

		u, err := accounts.Login(authEmail, authPassword)
		if err != nil {
			return err
		}
		fmt.Printf("Welcome back, %s!\n", u.Name)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, accounts, _, _, log, err := openEnv()
		if err != nil {
			return err
		}
		defer st.Close()
		defer log.Sync()

		if err := accounts.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, accounts, _, _, log, err := openEnv()
		if err != nil {
			return err
		}
		defer st.Close()
		defer log.Sync()

		u, ok, err := accounts.Current()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Not logged in.")
			return nil
		}
		fmt.Printf("%s <%s> (joined %s)\n", u.Name, u.Email, u.JoinedDate())
		return nil
	},
}

func init() {
	signupCmd.Flags().StringVar(&authName, "name", "", "full name")
	signupCmd.Flags().StringVar(&authEmail, "email", "", "email address")
	signupCmd.Flags().StringVar(&authPassword, "password", "", "password")

	loginCmd.Flags().StringVar(&authEmail, "email", "", "email address")
	loginCmd.Flags().StringVar(&authPassword, "password", "", "password")
}
