// ABOUTME: Root command, configuration loading and log setup
// ABOUTME: Binds persistent flags to viper and routes log output to file and console
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/Resonate-Protocol/resonate-pcm/internal/batch"
	"github.com/Resonate-Protocol/resonate-pcm/pkg/audio"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries state shared by every subcommand
type app struct {
	v       *viper.Viper
	cfgFile string
	logFile io.Closer
}

// run executes the CLI with args and releases the log file afterwards
func run(args []string, stdout io.Writer) error {
	a := &app{v: viper.New()}
	defer a.close()

	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	return rootCmd.Execute()
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "pcmconv",
		Short:        "Convert PCM audio between sample formats, channel layouts and rates",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config file (default: ./pcmconv.yaml or $HOME/pcmconv.yaml)")
	rootCmd.PersistentFlags().String("log-file", "pcmconv.log", "Log file path (empty disables the file)")
	rootCmd.PersistentFlags().String("raw-format", "i16", "Sample format of raw (non-WAV) input files")
	rootCmd.PersistentFlags().Int("raw-rate", 44100, "Sample rate of raw input files")
	rootCmd.PersistentFlags().Int("raw-channels", 2, "Channel count of raw input files")

	for key, flag := range map[string]string{
		"log-file":     "log-file",
		"raw.format":   "raw-format",
		"raw.rate":     "raw-rate",
		"raw.channels": "raw-channels",
	} {
		_ = a.v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := a.loadConfig(); err != nil {
			return err
		}
		return a.setupLogging(!a.usesTUI(cmd))
	}

	rootCmd.AddCommand(
		newConvertCmd(a),
		newInfoCmd(a),
		newToneCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// loadConfig reads the optional config file and enables PCMCONV_ env vars
func (a *app) loadConfig() error {
	v := a.v

	v.SetDefault("raw.format", "i16")
	v.SetDefault("raw.rate", 44100)
	v.SetDefault("raw.channels", 2)

	v.SetEnvPrefix("PCMCONV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else {
		v.SetConfigName("pcmconv")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// usesTUI reports whether cmd will draw the progress TUI, in which case
// logs must stay off the terminal
func (a *app) usesTUI(cmd *cobra.Command) bool {
	return cmd.Name() == "convert" && !a.v.GetBool("no-tui")
}

// setupLogging sends log output to the log file and, when console is
// set, to stdout as well
func (a *app) setupLogging(console bool) error {
	var writers []io.Writer
	if console {
		writers = append(writers, os.Stdout)
	}

	if path := a.v.GetString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("error opening log file: %w", err)
		}
		a.logFile = f
		writers = append(writers, f)
	}

	if len(writers) == 0 {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(io.MultiWriter(writers...))

	if used := a.v.ConfigFileUsed(); used != "" {
		log.Printf("Using config file: %s", used)
	}
	return nil
}

func (a *app) close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

// targetFromConfig reads target.* keys; unset keys keep the source value
func targetFromConfig(v *viper.Viper) (batch.Target, error) {
	var t batch.Target
	if s := v.GetString("target.format"); s != "" {
		sf, err := audio.ParseSampleFormat(s)
		if err != nil {
			return t, err
		}
		t.SampleFormat = sf
	}
	t.SampleRate = v.GetInt("target.rate")
	t.Channels = v.GetInt("target.channels")
	return t, nil
}

// rawFromConfig reads raw.* keys describing headerless input files
func rawFromConfig(v *viper.Viper) (audio.Format, error) {
	sf, err := audio.ParseSampleFormat(v.GetString("raw.format"))
	if err != nil {
		return audio.Format{}, fmt.Errorf("raw.format: %w", err)
	}
	return audio.Format{
		SampleFormat: sf,
		SampleRate:   v.GetInt("raw.rate"),
		Channels:     v.GetInt("raw.channels"),
	}, nil
}

// describeTarget renders t with "source" standing in for unset fields
func describeTarget(t batch.Target) string {
	format, rate, channels := "source", "source", "source"
	if t.SampleFormat != 0 {
		format = t.SampleFormat.String()
	}
	if t.SampleRate != 0 {
		rate = fmt.Sprintf("%dHz", t.SampleRate)
	}
	if t.Channels != 0 {
		channels = fmt.Sprintf("%dch", t.Channels)
	}
	return fmt.Sprintf("format=%s rate=%s channels=%s", format, rate, channels)
}
