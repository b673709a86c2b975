// Package graphql exposes the settings service as a GraphQL schema.
package graphql

// Schema is the GraphQL schema served at /graphql. Timestamps are rendered
// as RFC 3339 UTC strings at this boundary.
const Schema = `
schema {
	query: Query
	mutation: Mutation
}

type Query {
	user(id: ID!): User
	users(ids: [ID!]!): [User]!
}

type Mutation {
	updateSettings(userId: ID!, settings: [SettingInput!]!): SettingsPayload!
}

enum Role {
	ADMIN
	MEMBER
}

type User {
	id: ID!
	email: String!
	role: Role!
	createdAt: String!
	settingsCount: Int!
}

type Setting {
	id: ID!
	key: String!
	value: String!
	updatedAt: String!
	updatedBy: User
}

input SettingInput {
	key: String!
	value: String!
}

type SettingsPayload {
	success: Boolean!
	user: User!
	settings: [Setting!]!
}
`
