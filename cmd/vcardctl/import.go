package main

import (
	"fmt"

	"kama_card_server/internal/config"
	dao "kama_card_server/internal/dao/mysql"
	"kama_card_server/internal/dao/mysql/repository"
	"kama_card_server/internal/dto/request"
	"kama_card_server/internal/service/card"
	"kama_card_server/internal/service/vcf"
	"kama_card_server/pkg/errorx"
	"kama_card_server/pkg/util/snowflake"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a .vcf file into the card database of an existing user",
	Long: `Opens the database from the config file (sqlite works well locally),
migrates the schema and saves every decoded contact for --owner.
Size limits and gender handling follow the [vcard] section of the config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

var importOwner string

func init() {
	importCmd.Flags().StringVar(&importOwner, "owner", "", "owner user uuid")
	_ = importCmd.MarkFlagRequired("owner")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFile(configPath); err != nil {
			return err
		}
	}
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	db, err := dao.Open(&cfg.MysqlConfig)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := dao.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	repos := repository.NewRepositories(db)

	snowflake.Init(cfg.SnowflakeConfig.MachineID)
	svc := vcf.NewVcfService(repos, card.NewCardService(repos, nil), nil, nil, vcf.OptionsFromConfig(cfg))
	rsp, err := svc.ImportVcard(request.ImportVcfRequest{OwnerId: importOwner, Vcf: string(data)})
	if rsp != nil {
		for _, id := range rsp.CardIds {
			cmd.Println(id)
		}
		cmd.Printf("batch %s: imported %d\n", rsp.BatchId, rsp.Imported)
	}
	if err != nil && errorx.GetCode(err) == errorx.CodeUserNotExist {
		return fmt.Errorf("user %s does not exist", importOwner)
	}
	return err
}
