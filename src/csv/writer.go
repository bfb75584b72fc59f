package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"

	"github.com/BielosX/wombat/pokedex/src/parquet"
	"github.com/BielosX/wombat/pokedex/src/utils"
	"github.com/xitongsys/parquet-go-source/buffer"
)

// LookupWriter writes parquet.LookupRow values as CSV, using the parquet
// column names as the header.
type LookupWriter struct {
	buffer *buffer.BufferFile
	writer *csv.Writer
	fields []reflect.StructField
}

const InitialCapacity = 1024 * 1024

func NewLookupWriter() *LookupWriter {
	bufferFile := buffer.NewBufferFileCapacity(InitialCapacity)
	return &LookupWriter{
		buffer: bufferFile,
		writer: csv.NewWriter(bufferFile),
		fields: utils.GetFields(parquet.LookupRow{}),
	}
}

func (w *LookupWriter) WriteHeader() error {
	names := make([]string, 0, len(w.fields))
	for _, field := range w.fields {
		properties := utils.ParquetTagToKeyValue(field.Tag.Get("parquet"))
		names = append(names, properties["name"])
	}
	return w.writer.Write(names)
}

func (w *LookupWriter) Write(row parquet.LookupRow) error {
	value := reflect.ValueOf(row)
	converted := make([]string, 0, len(w.fields))
	for _, field := range w.fields {
		converted = append(converted, fmt.Sprint(value.FieldByName(field.Name).Interface()))
	}
	return w.writer.Write(converted)
}

func (w *LookupWriter) WriteRows(rows []parquet.LookupRow) error {
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (w *LookupWriter) Finish() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return err
	}
	_, err := w.buffer.Seek(0, io.SeekStart)
	return err
}

func (w *LookupWriter) Size() int {
	return len(w.buffer.Bytes())
}

func (w *LookupWriter) BufferReader() io.Reader {
	return w.buffer
}
