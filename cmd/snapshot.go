package cmd

import (
	"fmt"

	"product-gifts/core/catalog"
	"product-gifts/core/config"
	"product-gifts/core/logger"
	"product-gifts/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// snapshotCmd records upstream catalog responses into the snapshot bucket
var snapshotCmd = &cobra.Command{
	Use:   "snapshot [productId] [itemId]",
	Short: "Record catalog responses for the snapshot source",
	Long: `Queries the upstream catalog for the product and item and stores both responses
in object storage, where the snapshot catalog source reads them.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		productID, itemID := args[0], args[1]

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		logg = logger.WithSelection(logg, productID, itemID)

		upstream, err := catalog.NewHTTPClient(cfg.Catalog)
		if err != nil {
			return err
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		snapshots := catalog.NewSnapshotClient(store, cfg.Storage.Bucket, cfg.Catalog.SnapshotPrefix)

		res, err := catalog.Join(cmd.Context(), upstream, productID, itemID)
		if err != nil {
			return err
		}

		if err := snapshots.Record(cmd.Context(), productID, itemID, res.Gifts, res.Info); err != nil {
			return err
		}

		logg.Info("Snapshot recorded",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("product_key", snapshots.ProductGiftsKey(productID)),
			zap.String("sku_key", snapshots.AdditionalInfoKey(itemID)),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(snapshotCmd)
}
