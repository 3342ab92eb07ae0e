package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tostruct/pkg/converter"
	"tostruct/pkg/modelgen"
	"tostruct/pkg/schemas"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "tostruct [flags] [input-file]",
	Short: "Convert structured-data descriptions into Go struct declarations",
	Long: `tostruct converts JSON, YAML, SQL CREATE TABLE, Protobuf, XML and CSV
inputs into Go struct declarations with serialization tags.

Examples:
  tostruct -f sql -d mysql -t gorm schema.sql
  tostruct -f json payload.json
  cat sample.csv | tostruct -f csv -o model.go`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

var exampleCmd = &cobra.Command{
	Use:       "example <format>",
	Short:     "Print a canned example input for a format",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "sql", "proto", "xml", "csv"},
	RunE: func(cmd *cobra.Command, args []string) error {
		sample := converter.Example(schemas.Format(args[0]))
		if sample == "" {
			return fmt.Errorf("no example for format %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), sample)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tostruct.yaml)")
	rootCmd.Flags().StringP("format", "f", "json", "Input format: json, yaml, sql, proto, xml, csv")
	rootCmd.Flags().StringP("dialect", "d", "", "SQL dialect: mysql, postgres, sqlite, oracle")
	rootCmd.Flags().StringP("tag-style", "t", "plain", "Tag style: plain, db, gorm, xorm")
	rootCmd.Flags().Bool("pointer", false, "Render nullable fields as pointers")
	rootCmd.Flags().StringP("package", "p", "model", "Package name of the generated file")
	rootCmd.Flags().String("root", converter.DefaultRootName, "Name of the top-level struct for unnamed inputs")
	rootCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.Flags().Bool("debug", false, "Dump the parsed spec before rendering")

	viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	viper.BindPFlag("dialect", rootCmd.Flags().Lookup("dialect"))
	viper.BindPFlag("tag_style", rootCmd.Flags().Lookup("tag-style"))
	viper.BindPFlag("pointer", rootCmd.Flags().Lookup("pointer"))
	viper.BindPFlag("package", rootCmd.Flags().Lookup("package"))
	viper.BindPFlag("root", rootCmd.Flags().Lookup("root"))
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("log_level", rootCmd.Flags().Lookup("log-level"))
	viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))

	rootCmd.AddCommand(exampleCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tostruct")
	}

	viper.SetEnvPrefix("TOSTRUCT")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger := setupLogging(viper.GetString("log_level"))

	input, err := readInput(args)
	if err != nil {
		logger.Errorf("failed to read input: %v", err)
		return err
	}

	format := schemas.Format(viper.GetString("format"))
	opts := &converter.Options{
		Dialect:               schemas.Dialect(viper.GetString("dialect")),
		TagStyle:              modelgen.TagStyle(viper.GetString("tag_style")),
		UsePointerForNullable: viper.GetBool("pointer"),
		PackageName:           viper.GetString("package"),
		RootName:              viper.GetString("root"),
	}

	if viper.GetBool("debug") {
		logger.SetLevel(logrus.DebugLevel)
		specs, err := converter.Parse(input, format, opts)
		if err != nil {
			logger.Errorf("parse failed: %v", err)
			return err
		}
		logger.Debug("parsed spec:\n" + spew.Sdump(specs))
	}

	output, err := converter.Convert(input, format, opts)
	if err != nil {
		logger.Errorf("conversion failed: %v", err)
		return err
	}

	if path := viper.GetString("output"); path != "" {
		if err := os.WriteFile(path, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Infof("wrote %s", path)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// setupLogging configures a logrus logger for the CLI. The conversion core
// itself never logs.
func setupLogging(logLevel string) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)
	return logger
}
