package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 按时间递增的唯一 ID, 用作请求 ID
func GenID() int64 {
	return node.Generate().Int64()
}

// GenString base58 形式, 放进响应头
func GenString() string {
	return node.Generate().Base58()
}
