package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gen2brain/beeep"
	"github.com/harrybrwn/config"
	"github.com/harrybrwn/editgrades/cmd/internal"
	"github.com/harrybrwn/editgrades/cmd/internal/opts"
	"github.com/harrybrwn/editgrades/cmd/internal/paths"
	"github.com/harrybrwn/editgrades/pkg/launch"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

var version string

// Logger for the cmd package
var Logger = &lumberjack.Logger{
	Filename:   filepath.Join(os.TempDir(), "editgrades.log"),
	MaxSize:    25,  // megabytes
	MaxBackups: 10,  // number of spare files
	MaxAge:     365, // days
	Compress:   false,
}

// Config holds the launcher's configuration.
type Config struct {
	// Python is the interpreter used to run the grade editor.
	Python string `yaml:"python" config:"python" default:"python3"`
	// Editor is the grade editor script, either a name looked up next
	// to the launcher binary or an absolute path.
	Editor string `yaml:"editor" config:"editor" default:"editgrades.py"`
	// Notify sends a desktop notification when an editing session fails.
	Notify bool `yaml:"notify" config:"notify"`
}

var conf = &Config{}

// Stop will print to stderr and exit with a non-zero status
func Stop(message interface{}) {
	switch msg := message.(type) {
	case *internal.UsageError:
		fmt.Fprintf(os.Stderr, "%v\n", msg)
		os.Exit(1)
	case *internal.Error:
		// an empty message means the editor already wrote its own
		// diagnostics and we only carry its status
		if msg.Msg != "" {
			logrus.Error(msg.Msg)
			fmt.Fprintf(os.Stderr, "%v\n", msg)
		}
		os.Exit(msg.Code)
	default:
		logrus.Errorf("%v", message)
		fmt.Fprintf(os.Stderr, "Error: %v\n", message)
		os.Exit(1)
	}
}

// Execute will execute the root comand on the cli
func Execute() (err error) {
	logrus.SetOutput(Logger)

	config.SetFilename("config.yml")
	config.SetType("yaml")
	config.AddPath("$EDITGRADES_CONFIG")
	config.AddDefaultDirs("editgrades")
	config.SetConfig(conf)

	err = config.ReadConfigFile()
	switch err {
	case nil:
		break
	case config.ErrNoConfigDir, config.ErrNoConfigFile:
		logrus.Infoln(err)
	default:
		return err
	}

	configfile := config.FileUsed()
	if configfile != "" {
		logdir := filepath.Join(filepath.Dir(configfile), "logs")
		if err = internal.Mkdir(logdir); err == nil {
			Logger.Filename = filepath.Join(logdir, "editgrades.log")
		}
	}

	beeep.DefaultDuration = 800
	globalFlags := opts.Global{}
	root := newRoot(&globalFlags)
	return root.Execute()
}

func newRoot(globals *opts.Global) *cobra.Command {
	root := &cobra.Command{
		Use:           "editgrades path/to/grades.csv",
		Short:         "Open a grades csv file in the grade editor.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &internal.UsageError{Name: invokedName()}
			}
			return nil
		},
		PersistentPreRun: func(*cobra.Command, []string) {
			if globals.Verbose {
				logrus.SetOutput(io.MultiWriter(Logger, os.Stderr))
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
	globals.AddToFlagSet(root.PersistentFlags())
	return root
}

func run(file string) error {
	csv, err := paths.Resolve(file)
	if err != nil {
		return err
	}
	l := launch.New()
	l.Interpreter = config.GetString("python")
	l.Script = config.GetString("editor")
	logrus.Infof("Opening %s", csv)
	code, err := l.Run(csv)
	if err != nil {
		return err
	}
	if code != 0 {
		logrus.Errorf("grade editor exited with status %d", code)
		if config.GetBool("notify") {
			e := beeep.Notify("editgrades",
				fmt.Sprintf("grade editor exited with status %d", code), "")
			if e != nil {
				logrus.Errorln(e)
			}
		}
		return &internal.Error{Code: code}
	}
	logrus.Infof("Closed %s", csv)
	return nil
}

func invokedName() string {
	return filepath.Base(os.Args[0])
}
