package main

import (
	"context"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/ribgsilva/studyvault/app/cmd/schema"
	"github.com/ribgsilva/studyvault/app/cmd/stats"
	"github.com/ribgsilva/studyvault/app/cmd/token"
	"github.com/spf13/cobra"
	"os"

	_ "github.com/go-sql-driver/mysql"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "notesctl",
		Short:         "Admin commands of the notes service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(schema.Command(), stats.Command(), token.Command())

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
