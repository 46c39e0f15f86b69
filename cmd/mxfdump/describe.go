package main

import (
	"context"
	"fmt"
	"os"

	goccyjson "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/ugparu/mxfheader/byteprovider"
	"github.com/ugparu/mxfheader/header"
)

type partitionPackSummary struct {
	MajorVersion                uint16 `json:"majorVersion" yaml:"majorVersion"`
	MinorVersion                uint16 `json:"minorVersion" yaml:"minorVersion"`
	ThisPartition              uint64 `json:"thisPartition" yaml:"thisPartition"`
	HeaderByteCount            uint64 `json:"headerByteCount" yaml:"headerByteCount"`
	BodySID                    uint32 `json:"bodySID" yaml:"bodySID"`
}

type diagnosticSummary struct {
	Severity    string `json:"severity" yaml:"severity"`
	Description string `json:"description" yaml:"description"`
	Cause       string `json:"cause,omitempty" yaml:"cause,omitempty"`
}

type describeOutput struct {
	PartitionPack       partitionPackSummary `json:"partitionPack" yaml:"partitionPack"`
	HasPreface          bool                 `json:"hasPreface" yaml:"hasPreface"`
	ContentStorageCount int                  `json:"contentStorageCount" yaml:"contentStorageCount"`
	MaterialPackageCount int                 `json:"materialPackageCount" yaml:"materialPackageCount"`
	SourcePackageCount  int                  `json:"sourcePackageCount" yaml:"sourcePackageCount"`
	TimelineTrackCount  int                  `json:"timelineTrackCount" yaml:"timelineTrackCount"`
	EssenceDuration     int64                `json:"essenceDuration" yaml:"essenceDuration"`
	Diagnostics         []diagnosticSummary  `json:"diagnostics" yaml:"diagnostics"`
}

func describeCmd() *cli.Command {
	var (
		format   string
		atOffset int64
	)

	return &cli.Command{
		Name:      "describe",
		Usage:     "Parse a header partition and print a summary",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "output format: json or yaml", Value: "json", Destination: &format},
			&cli.Int64Flag{Name: "at-offset", Usage: "byte offset the header partition starts at", Destination: &atOffset},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("mxfdump describe: a file path is required")
			}

			r, err := byteprovider.NewFileProviderAt(path, atOffset)
			if err != nil {
				return err
			}
			defer r.Close()

			hp, err := header.New(r)
			fatal := err != nil

			out := describeOutput{Diagnostics: []diagnosticSummary{}}
			if hp != nil {
				pp := hp.PartitionPack()
				out.PartitionPack = partitionPackSummary{
					MajorVersion:    pp.MajorVersion,
					MinorVersion:    pp.MinorVersion,
					ThisPartition:   pp.ThisPartition,
					HeaderByteCount: pp.HeaderByteCount,
					BodySID:         pp.BodySID,
				}
				out.HasPreface = hp.Preface() != nil
				out.ContentStorageCount = len(hp.ContentStorageList())
				out.MaterialPackageCount = len(hp.MaterialPackages())
				out.SourcePackageCount = len(hp.SourcePackages())
				out.TimelineTrackCount = len(hp.TimelineTracks())
				out.EssenceDuration = hp.EssenceDuration()
				for _, d := range hp.Diagnostics() {
					entry := diagnosticSummary{Severity: d.Severity.String(), Description: d.Description}
					if d.Cause != nil {
						entry.Cause = d.Cause.Error()
					}
					out.Diagnostics = append(out.Diagnostics, entry)
				}
			}

			if renderErr := render(format, out); renderErr != nil {
				return renderErr
			}

			if fatal {
				return fmt.Errorf("mxfdump describe: %w", err)
			}
			return nil
		},
	}
}

func render(format string, out describeOutput) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(out)
	case "json", "":
		enc := goccyjson.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("mxfdump describe: unknown format %q", format)
	}
}
