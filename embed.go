// embed.go - 资源嵌入声明
// 必须放在项目根目录（与 data/ 同级）
// 因为 //go:embed 指令只能嵌入当前包目录及其子目录的文件
//
// 牌面图片不嵌入：素材包单独分发，运行时从 assets.base_path 读取
package main

import "embed"

//go:embed data/cardtable.yaml
var dataFS embed.FS
