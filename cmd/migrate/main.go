package main

import (
	"fmt"
	"os"

	"github.com/SketchShifter/tag_backend/internal/config"
	"github.com/SketchShifter/tag_backend/internal/logger"
	"github.com/SketchShifter/tag_backend/internal/models"
	"github.com/SketchShifter/tag_backend/internal/seed"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "タグAPIのデータベースマイグレーション",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "テーブルを作成・更新する",
			RunE: withDB(func(db *gorm.DB) error {
				if err := db.AutoMigrate(&models.User{}, &models.Tag{}); err != nil {
					return fmt.Errorf("マイグレーションに失敗しました: %w", err)
				}
				fmt.Println("マイグレーションが成功しました")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "テーブルを削除する",
			RunE: withDB(func(db *gorm.DB) error {
				if err := db.Migrator().DropTable(&models.Tag{}, &models.User{}); err != nil {
					return fmt.Errorf("テーブル削除に失敗しました: %w", err)
				}
				fmt.Println("テーブルの削除が成功しました")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "seed",
			Short: "初期タグを投入する（既存のラベルはスキップ）",
			RunE: withDB(func(db *gorm.DB) error {
				tags := seed.CloneTags()
				for i := range tags {
					tags[i].ID = 0
				}
				result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&tags)
				if result.Error != nil {
					return fmt.Errorf("初期データの投入に失敗しました: %w", result.Error)
				}
				fmt.Printf("%d件のタグを投入しました\n", result.RowsAffected)
				return nil
			}),
		},
	)

	return root
}

// withDB 設定とDB接続を準備してから fn を実行する
func withDB(fn func(db *gorm.DB) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("設定の読み込みに失敗しました: %w", err)
		}

		log, err := logger.NewLogger(cfg.Log.Level, "console", "tag-migrate")
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		db, err := config.InitDB(cfg, log)
		if err != nil {
			log.Error("データベース接続に失敗しました", zap.Error(err))
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		return fn(db)
	}
}
