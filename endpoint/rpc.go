package endpoint

import (
	"fmt"
	"log"

	"gobridgerouter/config"

	"github.com/ybbus/jsonrpc"
)

// RPCEndpoint notifies a remote bridge operator over JSON-RPC. Each
// endpoint may expose several URLs; they are tried in order until one
// accepts the call.
type RPCEndpoint struct {
	URLs []string
}

func NewRPCEndpoint(urls []string) *RPCEndpoint {
	return &RPCEndpoint{URLs: urls}
}

func (e *RPCEndpoint) Dispatch(notice DispatchNotice) error {
	var reterr error
	for i := 0; i < config.RPC_RETRIES; i++ {
		for _, url := range e.URLs {
			client := jsonrpc.NewClient(url)
			resp, err := client.Call("bridge_dispatch", notice)
			if err != nil {
				reterr = fmt.Errorf("error calling bridge_dispatch on %s: %s", url, err.Error())
				log.Print(reterr.Error())
				continue
			}
			if resp.Error != nil {
				reterr = fmt.Errorf("bridge_dispatch rejected by %s: %s", url, resp.Error.Message)
				log.Print(reterr.Error())
				continue
			}
			return nil
		}
	}
	return reterr
}
