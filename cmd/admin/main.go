// Command admin is the operator tool for a shopfront deployment. It shares
// the server configuration and talks to the database directly:
//
//	admin seed               loads the demo catalog unless products exist
//	admin adduser <name>     creates an account, prompting for the password
//	admin adduser -hashed <name> <bcrypt-hash>
//	                         creates an account from an existing bcrypt hash
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/dmitrijs2005/shopfront/internal/cryptox"
	"github.com/dmitrijs2005/shopfront/internal/server/auth"
	"github.com/dmitrijs2005/shopfront/internal/server/config"
	"github.com/dmitrijs2005/shopfront/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/shopfront/internal/server/services"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	cfg := config.LoadConfig()

	db, rm, err := repomanager.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer db.Close()

	if err := rm.RunMigrations(ctx, db); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	switch os.Args[1] {
	case "seed":
		box, err := cryptox.NewBox(cfg.EncryptionKey)
		if err != nil {
			log.Fatalf("encryption key error: %v", err)
		}
		seeded, err := services.NewProductService(db, rm, box).Seed(ctx)
		if err != nil {
			log.Fatalf("seed error: %v", err)
		}
		if seeded == 0 {
			fmt.Println("catalog is not empty, nothing to do")
			return
		}
		fmt.Printf("seeded %d products\n", seeded)

	case "adduser":
		tokens := auth.NewTokenManager(cfg.SecretKey, cfg.Algorithm, cfg.AccessTokenTTL)
		addUser(ctx, services.NewUserService(db, rm, tokens), os.Args[2:])

	default:
		usage()
		os.Exit(2)
	}
}

func addUser(ctx context.Context, users *services.UserService, args []string) {
	if len(args) > 0 && args[0] == "-hashed" {
		if len(args) != 3 {
			usage()
			os.Exit(2)
		}
		if _, err := users.RegisterPrehashed(ctx, args[1], args[2]); err != nil {
			log.Fatalf("adduser error: %v", err)
		}
		fmt.Printf("user %q created\n", args[1])
		return
	}

	if len(args) != 1 {
		usage()
		os.Exit(2)
	}

	fmt.Print("Enter password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		log.Fatalf("reading password: %v", err)
	}
	if len(password) == 0 {
		log.Fatal("password must not be empty")
	}

	if _, err := users.Register(ctx, args[0], string(password)); err != nil {
		log.Fatalf("adduser error: %v", err)
	}
	fmt.Printf("user %q created\n", args[0])
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: admin seed | admin adduser [-hashed] <username> [bcrypt-hash]")
}
