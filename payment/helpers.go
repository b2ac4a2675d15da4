package payment

import "encoding/json"

func mustMarshalJson(data any) []byte {
	body, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return body
}
