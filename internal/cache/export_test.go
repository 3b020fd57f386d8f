package cache

var SetIfNewerScriptHash = setIfNewerScript.Hash()
