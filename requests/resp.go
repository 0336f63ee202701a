package requests

import (
	"encoding/json"
	"io"
	"net/http"
)

type Resp struct {
	Status int
	Body   []byte
}

// OK reports a 2xx status.
func (r *Resp) OK() bool {
	return r.Status/100 == 2
}

func (r *Resp) Obj(obj interface{}) error {
	return json.Unmarshal(r.Body, obj)
}

func getBytes(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}
