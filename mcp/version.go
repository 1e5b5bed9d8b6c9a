package mcp

// Version is the mcp-tooldef release version
const Version = "0.1.0"
