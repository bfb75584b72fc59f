package parquet

import (
	"io"

	"github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/writer"
)

type LookupWriter struct {
	buffer *buffer.BufferFile
	writer *writer.ParquetWriter
	rows   int
}

const InitialCapacity = 1024 * 1024

func NewLookupWriter() (*LookupWriter, error) {
	bufferFile := buffer.NewBufferFileCapacity(InitialCapacity)
	w, err := writer.NewParquetWriter(bufferFile, new(LookupRow), 4)
	if err != nil {
		return nil, err
	}
	return &LookupWriter{
		buffer: bufferFile,
		writer: w,
	}, nil
}

func (w *LookupWriter) WriteRow(row *LookupRow) error {
	if err := w.writer.Write(row); err != nil {
		return err
	}
	w.rows++
	return nil
}

func (w *LookupWriter) WriteRows(rows []LookupRow) error {
	for i := range rows {
		if err := w.WriteRow(&rows[i]); err != nil {
			return err
		}
	}
	return nil
}

func (w *LookupWriter) Rows() int {
	return w.rows
}

func (w *LookupWriter) Finish() error {
	err := w.writer.WriteStop()
	if err != nil {
		return err
	}
	_, err = w.buffer.Seek(0, io.SeekStart)
	return err
}

func (w *LookupWriter) Size() int {
	return len(w.buffer.Bytes())
}

func (w *LookupWriter) BufferReader() io.Reader {
	return w.buffer
}
