package report

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Materialize writes a flat table as a timestamped artifact.
	Materialize(ctx context.Context, input MaterializeInput) (Artifact, error)
	// DownloadSelected builds the spreadsheet of the selected records.
	DownloadSelected(ctx context.Context, input DownloadSelectedInput) (Artifact, error)
	// Open streams a previously materialized artifact by file name.
	Open(ctx context.Context, filename string) (OpenOutput, error)
}
