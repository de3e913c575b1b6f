package wordlist

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"crosswarped.com/xwlayout"
)

// BigQuerySource reads word/clue pairs from a BigQuery table with string
// columns `word` and `clue`, optionally restricted to one `scope`.
type BigQuerySource struct {
	client   *bigquery.Client
	table    string
	scope    string
	location string
}

func NewBigQuerySource(ctx context.Context, projectID, table, scope string) (*BigQuerySource, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	return &BigQuerySource{client: client, table: table, scope: scope, location: "US"}, nil
}

func (s *BigQuerySource) Close() error {
	return s.client.Close()
}

func (s *BigQuerySource) query() (string, []bigquery.QueryParameter) {
	q := fmt.Sprintf("SELECT word, clue FROM `%s`", s.table)
	if s.scope == "" {
		return q, nil
	}
	return q + " WHERE scope = @scope", []bigquery.QueryParameter{{Name: "scope", Value: s.scope}}
}

func (s *BigQuerySource) Load(ctx context.Context) ([]xwlayout.WordEntry, error) {
	sql, params := s.query()
	q := s.client.Query(sql)
	q.Location = s.location
	q.Parameters = params

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var records []Record
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}
		r, err := recordFromRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return finish(records)
}

func recordFromRow(row []bigquery.Value) (Record, error) {
	if len(row) < 2 {
		return Record{}, fmt.Errorf("row has %d columns, want 2", len(row))
	}
	word, ok := row[0].(string)
	if !ok {
		return Record{}, fmt.Errorf("row[0] is not a string: %v", row[0])
	}
	// NULL clues come back as nil.
	var clue string
	if row[1] != nil {
		if clue, ok = row[1].(string); !ok {
			return Record{}, fmt.Errorf("row[1] is not a string: %v", row[1])
		}
	}
	return Record{Word: word, Clue: clue}, nil
}
