package utils

// ReadFromData 从data头部取出至多maxRead字节, 返回取出的部分和剩余部分
func ReadFromData(maxRead int, data []byte) (chunk, rest []byte) {
	if maxRead <= 0 || len(data) == 0 {
		return nil, data
	}
	if len(data) < maxRead {
		return data, nil
	}
	return data[:maxRead], data[maxRead:]
}
