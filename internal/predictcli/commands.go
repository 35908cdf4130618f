package predictcli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/okian/footrisk/internal/adapters/predictor"
	"github.com/okian/footrisk/internal/domain/prediction"
	"github.com/spf13/cobra"
)

func newHealthCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the prediction service is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hs, err := opts.client().HealthCheck(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), hs)
		},
	}
}

func newPredictCommand(opts *globalOptions) *cobra.Command {
	var (
		input    string
		images   []string
		patient  string
		output   string
		validate bool
	)
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Submit one prediction request",
		Example: `  footrisk-predict predict --input visit.json --image left.jpg --image right.jpg
  footrisk-predict predict --patient p-17 --input visit.json --output result.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := readRequest(input)
			if err != nil {
				return err
			}
			if patient != "" {
				req.PatientID = patient
			}

			files := make([]predictor.ImageFile, 0, len(images))
			for _, p := range images {
				files = append(files, predictor.FileOnDisk(p))
			}
			encoded, err := predictor.ProcessImages(cmd.Context(), files)
			if err != nil {
				return err
			}
			req.FootImages = append(req.FootImages, encoded...)

			if validate {
				if err := req.Validate(); err != nil {
					return err
				}
			}

			resp, err := opts.client().Predict(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeJSONFile(cmd.OutOrStdout(), output, resp)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "JSON prediction request file")
	f.StringArrayVar(&images, "image", nil, "foot image to attach (repeatable)")
	f.StringVar(&patient, "patient", "", "patient identifier")
	f.StringVarP(&output, "output", "o", "", "write the response here instead of stdout")
	f.BoolVar(&validate, "validate", false, "check value ranges before sending")
	return cmd
}

func newDataFormatCommand(opts *globalOptions) *cobra.Command {
	var section string
	cmd := &cobra.Command{
		Use:   "data-format",
		Short: "Print the input format the service expects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := opts.client().DataFormat(cmd.Context())
			if err != nil {
				return err
			}
			if section == "" {
				return writeJSON(cmd.OutOrStdout(), doc)
			}
			sec, ok := doc.Section(section)
			if !ok {
				return fmt.Errorf("unknown section %q (have %v)", section, doc.Keys())
			}
			return writeJSON(cmd.OutOrStdout(), sec)
		},
	}
	cmd.Flags().StringVar(&section, "section", "", "print only this section, e.g. pedoscan")
	return cmd
}

// readRequest loads a request from path. An empty path yields an empty request.
func readRequest(path string) (*prediction.Request, error) {
	req := &prediction.Request{}
	if path == "" {
		return req, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, req); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return req, nil
}
