package a

const svg format = 3
