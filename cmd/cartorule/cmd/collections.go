package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/solatis/cartorule/internal/core/db"
	"github.com/solatis/cartorule/internal/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored rule collections",
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show <collection-id>",
	Short: "Print the latest revision of a collection as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new empty collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(createCmd)
	showCmd.Flags().Int64("revision", 0, "show a specific revision instead of the latest")
}

func openStore() (*db.Store, func(), error) {
	conn, err := openDatabase()
	if err != nil {
		return nil, nil, err
	}
	store, err := db.NewStore(conn)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return store, func() { conn.Close() }, nil
}

func runList(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	collections, err := store.ListCollections()
	if err != nil {
		return err
	}
	for _, c := range collections {
		fmt.Printf("%s  %-30s %s\n", c.ID, c.Name, c.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := types.ParseCollectionID(args[0])
	if err != nil {
		return fmt.Errorf("invalid collection id: %w", err)
	}

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	var rules []types.Rule
	revision, _ := cmd.Flags().GetInt64("revision")
	if revision > 0 {
		rules, err = store.LoadRevision(id, revision)
	} else {
		rules, _, err = store.LoadLatest(id)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rules)
}

func runCreate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	id, err := store.CreateCollection(args[0])
	if err != nil {
		return err
	}
	if _, err := store.SaveRevision(id, nil); err != nil {
		return err
	}

	logger.Info("collection created",
		zap.String("collection_id", string(id)),
		zap.String("name", args[0]))
	fmt.Println(id)
	return nil
}
