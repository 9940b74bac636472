package out

import "context"

type FileWriter interface {
	Write(ctx context.Context, dir, name string, payload []byte) (string, error)
}
