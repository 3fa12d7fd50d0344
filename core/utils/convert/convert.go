package convert

import "unsafe"

// StringToBytes 返回与str共享内存的[]byte, 调用者不能修改其内容
func StringToBytes(str string) []byte {
	if len(str) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(str), len(str))
}

func BytesToString(p []byte) string {
	if len(p) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(p), len(p))
}
