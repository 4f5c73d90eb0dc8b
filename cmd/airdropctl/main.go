package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BubsLB/airdropbreakdown/common"
	"github.com/BubsLB/airdropbreakdown/conf"
	"github.com/BubsLB/airdropbreakdown/database"
	"github.com/BubsLB/airdropbreakdown/model"
	"github.com/BubsLB/airdropbreakdown/service/dataset_service"
	"github.com/BubsLB/airdropbreakdown/service/eligibility_service"
	"github.com/BubsLB/airdropbreakdown/storage"

	"github.com/schollz/progressbar/v3"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate":
		validateCmd()
	case "check":
		checkCmd()
	case "import":
		importCmd()
	case "export":
		exportCmd()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Airdrop Eligibility CLI Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  airdropctl <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  validate   Show which address formats accept an address")
	fmt.Println("  check      Load the configured dataset and check one address")
	fmt.Println("  import     Copy the published documents into the configured database")
	fmt.Println("  export     Publish the database contents as JSON documents")
	fmt.Println("  help       Show this help message")
	fmt.Println()
	fmt.Println("Config options (check, import, export):")
	fmt.Println("  -env <loc|mainnet|testnet|example>   Environment config file (default mainnet)")
	fmt.Println("  -config <path>                       Explicit config file")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Validate an address")
	fmt.Println("  airdropctl validate 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	fmt.Println()
	fmt.Println("  # Check an address against the local dataset")
	fmt.Println("  airdropctl check -env loc 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	fmt.Println()
	fmt.Println("  # Import documents into pebble/mysql/redis")
	fmt.Println("  airdropctl import -config ./conf/conf_example.yaml")
}

// configFlags flag set carrying -env and -config
func configFlags(name string) (*flag.FlagSet, *string, *string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	env := fs.String("env", "mainnet", "Environment: loc/mainnet/testnet/example")
	path := fs.String("config", "", "Config file path, overrides -env")
	return fs, env, path
}

func loadConfig(env, path string) {
	var err error
	if path != "" {
		err = conf.InitConfigFile(path)
	} else {
		environment, parseErr := conf.ParseEnvironment(env)
		if parseErr != nil {
			fmt.Printf("Error: %v\n", parseErr)
			os.Exit(1)
		}
		conf.SystemEnvironmentEnum = environment
		err = conf.InitConfig()
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if err := conf.InitLogger(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func validateCmd() {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	net := fs.String("net", "livenet", "Bitcoin network: livenet/testnet/regtest")
	fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: airdropctl validate [-net livenet] <address>")
		os.Exit(1)
	}
	address := strings.TrimSpace(fs.Arg(0))

	// Every known scheme, regardless of layout
	policy, err := eligibility_service.PolicyForLayout(model.LayoutAlias, []string{eligibility_service.SchemeBitcoin}, common.NetParams(*net))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	names := policy.Accepting(address)
	if len(names) == 0 {
		fmt.Println("✗ Invalid address")
		fmt.Println(policy.InvalidMessage())
		os.Exit(1)
	}

	fmt.Println("✓ Valid address")
	fmt.Printf("  Formats: %s\n", strings.Join(names, ", "))
	if eligibility_service.IsEvmAddress(address) {
		fmt.Printf("  Checksum: %s\n", common.ToChecksumAddress(address))
	}
}

func checkCmd() {
	fs, env, path := configFlags("check")
	fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: airdropctl check [-env loc] [-config file] <address>")
		os.Exit(1)
	}
	loadConfig(*env, *path)
	defer database.CloseDatabase()

	source, err := dataset_service.NewSourceFromConfig()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	loader := dataset_service.NewLoader(source)
	if err := loader.Load(context.Background()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// No cosmetic delay on the command line
	conf.Cfg.Checker.CheckDelayMs = 0
	checkService, err := eligibility_service.NewCheckServiceFromConfig(loader)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	result := checkService.Check(fs.Arg(0))
	printResult(result)
	if !result.IsLookup() {
		os.Exit(1)
	}
}

func printResult(result eligibility_service.Result) {
	fmt.Printf("Status:  %s\n", result.Kind)
	fmt.Printf("Message: %s\n", result.Message)
	if result.Scheme != "" {
		fmt.Printf("Scheme:  %s\n", result.Scheme)
	}
	if result.AccountID != "" && result.AccountID != strings.ToLower(result.Address) {
		fmt.Printf("Account: %s\n", result.AccountID)
	}
	if result.Record == nil {
		return
	}

	fmt.Printf("Total:   %d\n", result.Record.Total)
	for _, campaign := range result.Record.Campaigns {
		fmt.Printf("  - %-24s %d\n", campaign.Name, campaign.Tokens)
	}
}

func importCmd() {
	fs, env, path := configFlags("import")
	fs.Parse(os.Args[2:])
	loadConfig(*env, *path)

	stor, err := storage.NewStorage()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	layout := model.Layout(conf.Cfg.Dataset.Layout)
	keys := dataset_service.KeysFromConfig()
	required := []string{keys.Data}
	if layout == model.LayoutAlias {
		required = []string{keys.AddressMap, keys.AirdropData}
	}
	for _, key := range required {
		if !stor.Exists(key) {
			fmt.Printf("Error: document %s not found in %s storage\n", key, conf.Cfg.Storage.Type)
			os.Exit(1)
		}
	}

	snapshot, err := dataset_service.NewStorageSource(stor, layout, keys).Load(context.Background())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := database.InitDatabaseFromConfig(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer database.CloseDatabase()

	bar := progressbar.NewOptions(
		dataset_service.Items(snapshot),
		progressbar.OptionSetDescription(fmt.Sprintf("[%s] Importing", database.GetDBType())),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("entries"),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)

	stats, err := dataset_service.Import(snapshot, database.DB, func() { bar.Add(1) })
	bar.Finish()
	fmt.Println()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Imported %d records and %d aliases into %s\n", stats.Records, stats.Aliases, database.GetDBType())
}

func exportCmd() {
	fs, env, path := configFlags("export")
	fs.Parse(os.Args[2:])
	loadConfig(*env, *path)

	if err := database.InitDatabaseFromConfig(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer database.CloseDatabase()

	stor, err := storage.NewStorage()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	stats, err := dataset_service.Export(database.DB, model.Layout(conf.Cfg.Dataset.Layout), stor, dataset_service.KeysFromConfig())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Exported %d records and %d aliases to %s storage\n", stats.Records, stats.Aliases, conf.Cfg.Storage.Type)
}
