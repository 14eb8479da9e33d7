package udf

func builtins() []Function {
	var fs []Function

	fs = append(fs, interpFunctions()...)
	fs = append(fs, pumpFunctions()...)
	fs = append(fs, pipeFunctions()...)
	fs = append(fs, curveFunctions()...)

	return fs
}
