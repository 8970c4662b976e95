// Package vcard 实现名片 (RFC 6350 vCard 4.0) 文本与结构化联系人记录之间的双向转换。
//
// Encode 把一条 ContactRecord 及其子集合序列化为单个 VCARD 组件，属性输出顺序固定；
// Decode 把一段可能包含多个 VCARD 组件的文本解析为 Bundle 列表，单个属性解析失败不会中断整张名片。
//
// 本包无 I/O、无共享可变状态，可在多个请求 goroutine 中并发调用。
package vcard
