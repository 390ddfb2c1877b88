package types

type ctxKey string

// ClientAppKey - ключ контекста, под которым хранится *client.App
const ClientAppKey ctxKey = "clientApp"
