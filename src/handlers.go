package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/BielosX/wombat/pokedex/src/csv"
	"github.com/BielosX/wombat/pokedex/src/parquet"
	"github.com/BielosX/wombat/pokedex/src/pokeapi"
	"github.com/BielosX/wombat/pokedex/src/render"
	"github.com/google/uuid"
)

type QueryRequest struct {
	Mode  pokeapi.LookupMode `json:"mode"`
	Input string             `json:"input"`
}

type QueryFailure struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type QueryResponse struct {
	Id        string             `json:"id"`
	Mode      pokeapi.LookupMode `json:"mode"`
	Input     string             `json:"input"`
	Result    pokeapi.ModeResult `json:"result,omitempty"`
	Text      string             `json:"text,omitempty"`
	SpriteUrl string             `json:"spriteUrl,omitempty"`
	Error     *QueryFailure      `json:"error,omitempty"`
}

type ExportRequest struct {
	Queries []QueryRequest `json:"queries"`
}

type ExportResult struct {
	ExportId        string          `json:"exportId"`
	ParquetFileName string          `json:"parquetFileName,omitempty"`
	CsvFileName     string          `json:"csvFileName,omitempty"`
	Rows            int             `json:"rows"`
	Failures        []QueryResponse `json:"failures,omitempty"`
}

func toResponse(outcome pokeapi.Outcome) QueryResponse {
	response := QueryResponse{
		Id:    outcome.Id.String(),
		Mode:  outcome.Query.Mode,
		Input: outcome.Query.RawInput,
	}
	if outcome.Err != nil {
		response.Error = &QueryFailure{
			Kind:    pokeapi.KindOf(outcome.Err).String(),
			Message: render.ErrorMessage(outcome.Err),
		}
		return response
	}
	response.Result = outcome.Result
	response.Text = render.Text(outcome.Result)
	response.SpriteUrl = render.SpriteUrl(outcome.Result)
	return response
}

func handleQuery(ctx context.Context, request QueryRequest) (*QueryResponse, error) {
	sugar.Infof("Starting Query Handler, mode: %s, input: %q", request.Mode, request.Input)
	if !request.Mode.Valid() {
		return nil, errors.New("query handler: missing or invalid mode")
	}
	outcome := <-client.Submit(ctx, request.Mode, request.Input)
	response := toResponse(outcome)
	return &response, nil
}

func handleExport(ctx context.Context, request ExportRequest) (*ExportResult, error) {
	sugar.Infof("Starting Export Handler, queries: %d", len(request.Queries))
	queries := make([]pokeapi.Query, 0, len(request.Queries))
	for i, q := range request.Queries {
		if !q.Mode.Valid() {
			return nil, fmt.Errorf("export handler: query %d has missing or invalid mode", i)
		}
		queries = append(queries, pokeapi.NewQuery(q.Mode, q.Input))
	}
	exportId := uuid.New().String()
	result := &ExportResult{ExportId: exportId}

	var rows []parquet.LookupRow
	for _, outcome := range client.QueryAll(ctx, queries) {
		if outcome.Err != nil {
			sugar.Infof("Skipping failed lookup %s %q: %s", outcome.Query.Mode, outcome.Query.RawInput, outcome.Err)
			result.Failures = append(result.Failures, toResponse(outcome))
			continue
		}
		rows = append(rows, parquet.ToRows(outcome.Id.String(), outcome.Result)...)
	}
	result.Rows = len(rows)
	sugar.Infof("Got %d rows from %d lookups", len(rows), len(queries))
	if len(rows) == 0 {
		return result, nil
	}

	lookupWriter, err := parquet.NewLookupWriter()
	if err != nil {
		sugar.Errorf("Failed to create Lookup Parquet Writer: %s", err)
		return nil, err
	}
	csvWriter := csv.NewLookupWriter()
	if err := csvWriter.WriteHeader(); err != nil {
		return nil, err
	}
	if err := lookupWriter.WriteRows(rows); err != nil {
		sugar.Errorf("Error writing rows to Parquet: %s", err)
		return nil, err
	}
	if err := csvWriter.WriteRows(rows); err != nil {
		sugar.Errorf("Error writing rows to CSV: %s", err)
		return nil, err
	}
	if err := lookupWriter.Finish(); err != nil {
		return nil, err
	}
	if err := csvWriter.Finish(); err != nil {
		return nil, err
	}

	parquetFileName := fmt.Sprintf("%s/%s.parquet", exportConfig.Prefix, exportId)
	csvFileName := fmt.Sprintf("%s/%s.csv", exportConfig.Prefix, exportId)
	sugar.Infof("Sending parquet file of size %d to S3", lookupWriter.Size())
	err = s3Client.PutFile(ctx, lookupWriter.BufferReader(), exportConfig.Bucket, parquetFileName, "application/vnd.apache.parquet")
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", parquetFileName, err)
	}
	sugar.Infof("Sending CSV file of size %d to S3", csvWriter.Size())
	err = s3Client.PutFile(ctx, csvWriter.BufferReader(), exportConfig.Bucket, csvFileName, "text/csv")
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", csvFileName, err)
	}
	result.ParquetFileName = parquetFileName
	result.CsvFileName = csvFileName
	return result, nil
}
