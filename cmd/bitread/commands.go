package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/bitread/internal/bitfile"
	"github.com/muurk/bitread/internal/config"
	"github.com/muurk/bitread/internal/decoder"
	"github.com/muurk/bitread/internal/frames"
	"github.com/muurk/bitread/internal/llsample"
	"github.com/muurk/bitread/internal/logging"
	"github.com/muurk/bitread/internal/ui"
	"github.com/muurk/bitread/internal/urls"
)

// Command flags
var (
	bitsOutput   string
	bitsStdout   bool
	sampleSeed   uint64
	sampleOutput string
	configForce  bool
)

func init() {
	rootCmd.AddCommand(bitsCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(framesCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(configCmd)
}

// bitsCmd implements the 'bits' command
var bitsCmd = &cobra.Command{
	Use:   "bits <bitstream>",
	Short: "Decode a bitstream into its set configuration bits",
	Long: `Decode a Vivado .bit file and write every configuration memory bit
that is set to 1, one bit_<frame>_<word>_<bit> line per bit.

This command will:
  1. Read the header and find the sync word
  2. Check the part is a supported Series-7 device
  3. Find the frame data write in the packet stream
  4. Build the part's frame address list from the prjxray database
  5. Walk the frame data and collect the set bits
  6. Write the bit list

The horizontal clock row bits (word 50, bits 0-12 of every frame) are
never reported. Nothing is written if decoding fails.`,
	Example: `  # Write design.bits next to design.bit
  bitread bits design.bit

  # Choose the output file
  bitread bits design.bit -o /tmp/high_bits.txt

  # Print the bits for a pipeline
  bitread bits design.bit --stdout | wc -l`,
	Args: cobra.ExactArgs(1),
	RunE: runBits,
}

func init() {
	bitsCmd.Flags().StringVarP(&bitsOutput, "output", "o", "", "Output file (default <bitstream>s)")
	bitsCmd.Flags().BoolVar(&bitsStdout, "stdout", false, "Write bits to stdout instead of a file")
}

// decodeStepNames are the runner steps for the bits command: one per
// pipeline stage plus the final write.
func decodeStepNames() []string {
	names := make([]string, 0, int(bitfile.StageDecode)+2)
	for s := bitfile.StageHeader; s <= bitfile.StageDecode; s++ {
		names = append(names, s.String())
	}
	return append(names, "Writing bit list")
}

func runBits(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	bitPath := args[0]
	outPath := bitsOutput
	if outPath == "" {
		outPath = bitfile.OutputPath(bitPath)
	}

	// Opened after the family check so unsupported parts are reported as such
	db := bitfile.LazyDatabase(openDatabase)

	logger := logging.GetLogger()

	// Styled output would mix with the bit list on stdout
	if quiet || bitsStdout {
		res, err := bitfile.DecodeFile(bitPath, db, bitfile.WithLogger(logger))
		if err != nil {
			return err
		}
		return writeBits(res.Bits, outPath)
	}

	steps := decodeStepNames()
	writeStep := len(steps)
	runner := ui.NewRunner(ui.RunnerConfig{
		Title:   "Decode Bitstream",
		Command: "bitread bits " + bitPath,
		Params: map[string]string{
			"Bitstream": bitPath,
			"Database":  cfg.Database.Dir,
			"Output":    outPath,
		},
		StepNames:    steps,
		Live:         stdoutIsTerminal(),
		Troubleshoot: troubleshooting,
	})

	_, err := runner.Run(func(onStep ui.StepCallback, onFrames ui.FrameCallback) (map[string]string, error) {
		current := 0
		res, err := bitfile.DecodeFile(bitPath, db,
			bitfile.WithLogger(logger),
			bitfile.WithStageCallback(func(s bitfile.Stage) {
				if current > 0 {
					onStep(current, "", ui.StepComplete, "")
				}
				current = int(s) + 1
				onStep(current, "", ui.StepRunning, "")
			}),
			bitfile.WithProgress(decoder.ProgressCallback(onFrames)),
		)
		if err != nil {
			if current > 0 {
				onStep(current, "", ui.StepFailed, bitfile.Classify(err).String())
			}
			return nil, err
		}
		onStep(current, "", ui.StepComplete, ui.FormatCount(len(res.Frames))+" frames")

		onStep(writeStep, "", ui.StepRunning, "")
		if err := writeBits(res.Bits, outPath); err != nil {
			onStep(writeStep, "", ui.StepFailed, "")
			return nil, err
		}
		onStep(writeStep, "", ui.StepComplete, outPath)

		return map[string]string{
			"Part":   res.Part,
			"Family": string(res.Family),
			"Frames": ui.FormatCount(len(res.Frames)),
			"Bits":   ui.FormatCount(len(res.Bits)),
			"Output": outPath,
		}, nil
	})
	return err
}

func writeBits(bits []decoder.Bit, outPath string) error {
	if bitsStdout {
		return bitfile.WriteBits(os.Stdout, bits)
	}
	if err := bitfile.WriteBitsFile(outPath, bits); err != nil {
		return err
	}
	logging.Info("bit list written",
		zap.String("path", outPath),
		zap.Int("bits", len(bits)),
	)
	return nil
}

// infoCmd implements the 'info' command
var infoCmd = &cobra.Command{
	Use:   "info <bitstream>",
	Short: "Show the part and frame data size of a bitstream",
	Long: `Read the header and packet stream of a bitstream without decoding any
frames. No prjxray database is needed.`,
	Example: `  bitread info design.bit`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		p := newPrinter()

		info, err := bitfile.InspectFile(args[0], bitfile.WithLogger(logging.GetLogger()))
		if err != nil {
			p.PrintFailure("Inspection failed", err, troubleshooting(err))
			return err
		}

		if quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", info.Part, info.PayloadWords)
			return nil
		}

		p.PrintHeader("Bitstream Info", "bitread info "+args[0], nil)
		p.PrintSuccess("Bitstream recognised", map[string]string{
			"Part":          info.Part,
			"Part field":    info.RawPart,
			"Design":        info.DesignInfo,
			"Sync offset":   strconv.FormatInt(info.SyncOffset, 10),
			"Payload words": ui.FormatCount(int(info.PayloadWords)),
			"Frames":        ui.FormatCount(info.PayloadFrames),
		})
		return nil
	},
}

// framesCmd implements the 'frames' command
var framesCmd = &cobra.Command{
	Use:   "frames <part>",
	Short: "List the frame addresses of a part",
	Long: `Build the sorted frame address list for a part from the prjxray
database and print one address per line. The list is the order in which
frame data appears in a full bitstream.`,
	Example: `  bitread frames xc7a35tcpg236-1
  bitread frames xc7z020clg400-1 -q | head`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		p := newPrinter()
		part := args[0]

		db, err := openDatabase()
		if err != nil {
			p.PrintFailure("Frame list failed", err, troubleshooting(err))
			return err
		}
		list, err := db.BuildFrameList(part)
		if err != nil {
			p.PrintFailure("Frame list failed", err, troubleshooting(err))
			return err
		}

		p.PrintHeader("Frame Addresses", "bitread frames "+part, map[string]string{
			"Database": cfg.Database.Dir,
		})

		w := bufio.NewWriter(cmd.OutOrStdout())
		for _, a := range list {
			fmt.Fprintln(w, a.Hex)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		path, _ := db.DescriptorPath(part)
		p.PrintSuccess("Frame list built", map[string]string{
			"Part":       part,
			"Descriptor": path,
			"Frames":     ui.FormatCount(len(list)),
		})
		return nil
	},
}

// sampleCmd implements the 'sample' command
var sampleCmd = &cobra.Command{
	Use:   "sample <ll-file> <count>",
	Short: "Sample fault bits from a logic location file",
	Long: `Pick <count> distinct SLICE bits at random from a Vivado logic location
(.ll) file and write them as a JSON fault bit list.

The output is written to <ll-name>_ll_sample_bits.json in the current
directory unless --output is given. If the file has fewer usable bits than
requested, all of them are written.`,
	Example: `  bitread sample design.ll 100
  bitread sample design.ll 100 --seed 42 -o faults.json`,
	Args: cobra.ExactArgs(2),
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().Uint64Var(&sampleSeed, "seed", 0, "Random seed (default from config, 0 picks one)")
	sampleCmd.Flags().StringVarP(&sampleOutput, "output", "o", "", "Output file (default <ll-name>_ll_sample_bits.json)")
}

func runSample(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	p := newPrinter()

	llPath := args[0]
	count, err := strconv.Atoi(args[1])
	if err != nil || count < 0 {
		err = fmt.Errorf("invalid bit count %q: must be a non-negative integer", args[1])
		p.PrintFailure("Invalid arguments", err, nil)
		return err
	}

	seed := cfg.Sample.Seed
	if cmd.Flags().Changed("seed") {
		seed = sampleSeed
	}
	outPath := sampleOutput
	if outPath == "" {
		outPath = llsample.OutputPath(llPath)
	}

	p.PrintHeader("Fault Bit Sample", "bitread sample "+llPath+" "+args[1], map[string]string{
		"Logic location": llPath,
		"Output":         outPath,
	})

	f, err := os.Open(llPath)
	if err != nil {
		p.PrintFailure("Sampling failed", err, []string{"Check the .ll file path"})
		return err
	}
	bits, err := llsample.Parse(f)
	f.Close()
	if err != nil {
		p.PrintFailure("Sampling failed", err, []string{
			"Generate the file with write_bitstream -logic_location_file",
		})
		return err
	}

	sample := llsample.Sample(bits, count, llsample.NewRand(seed))
	if len(sample) < count {
		logging.Warn("sample count clamped",
			zap.Int("requested", count),
			zap.Int("available", len(bits)),
		)
		p.PrintWarning("Fewer usable bits than requested", map[string]string{
			"Requested": ui.FormatCount(count),
			"Available": ui.FormatCount(len(bits)),
		})
	}

	if err := writeSample(outPath, sample); err != nil {
		p.PrintFailure("Sampling failed", err, nil)
		return err
	}

	p.PrintSuccess("Fault bit list written", map[string]string{
		"SLICE bits": ui.FormatCount(len(bits)),
		"Sampled":    ui.FormatCount(len(sample)),
		"Output":     outPath,
	})
	return nil
}

func writeSample(path string, sample []llsample.Bit) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sample file: %w", err)
	}
	if err := llsample.WriteJSON(f, sample); err != nil {
		f.Close()
		return fmt.Errorf("failed to write sample file: %w", err)
	}
	return f.Close()
}

// configCmd groups the configuration subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the bitread configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			if path, err = config.GetConfigPath(); err != nil {
				return err
			}
		}
		fmt.Println(path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		p := newPrinter()

		path, err := config.Init(configPath, configForce)
		if err != nil {
			p.PrintFailure("Config init failed", err, []string{"Use --force to overwrite an existing file"})
			return err
		}
		p.PrintSuccess("Configuration written", map[string]string{"Path": path})
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing configuration file")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

// troubleshooting returns tips for a failed command.
func troubleshooting(err error) []string {
	if errors.Is(err, os.ErrNotExist) && bitfile.Classify(err) == bitfile.KindIO {
		return []string{"Check the file path"}
	}
	if errors.Is(err, frames.ErrNoDatabase) {
		return []string{
			"Set --db, database.dir or " + config.DatabaseEnv,
			"Get the database from " + urls.PrjxrayDatabase,
		}
	}

	switch bitfile.Classify(err) {
	case bitfile.KindTruncatedStream:
		return []string{
			"The file ends early; check it was copied completely",
			"Regenerate it with write_bitstream",
		}
	case bitfile.KindUnrecognizedFormat:
		return []string{
			"Only Vivado .bit files with a header are supported",
			".bin and .rbt files are not supported",
		}
	case bitfile.KindSyncNotFound:
		return []string{"The file is corrupt or is not a Xilinx bitstream"}
	case bitfile.KindConfigPacketNotFound:
		return []string{
			"Compressed, encrypted and partial bitstreams are not supported",
			"Disable BITSTREAM.GENERAL.COMPRESS and regenerate",
		}
	case bitfile.KindUnsupportedDevice:
		return []string{"Only Series-7 parts (xc7a, xc7k, xc7s, xc7z) are supported"}
	case bitfile.KindMalformedPacket, bitfile.KindIncompletePacket:
		return []string{
			"The frame data does not match the part's frame layout",
			"Check the prjxray database matches the device",
			"Partial bitstreams are not supported",
			"Frame layout reference: " + urls.Prjxray,
		}
	case bitfile.KindDescriptor:
		return []string{
			"Check --db, database.dir or " + config.DatabaseEnv + " points at a prjxray database",
			"Try: bitread frames <part>",
			"Get the database from " + urls.PrjxrayDatabase,
		}
	default:
		if cfg == nil || cfg.Database.Dir == "" {
			return []string{
				"Set the prjxray database with --db or " + config.DatabaseEnv,
				"Get the database from " + urls.PrjxrayDatabase,
			}
		}
		return []string{"Check file paths and permissions"}
	}
}
